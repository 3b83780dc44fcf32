package handlers

import (
	"net/http"

	"turfadmin/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the admin operations over HTTP.
type AdminHandler struct {
	Service admin.AdminService
	Logger  *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc admin.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		Service: svc,
		Logger:  logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler handles POST /api/admin/login.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c, h.Logger).Warn("Invalid login payload", zap.Error(err))
		fail(c, http.StatusOK, admin.MsgInvalidCredentials)
		return
	}

	token, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		h.respondError(c, err, envelopeOnly, "Admin login failed")
		return
	}
	succeed(c, gin.H{"token": token})
}

// DashboardHandler handles GET /api/admin/dashboard.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	data, err := h.Service.Dashboard(c.Request.Context())
	if err != nil {
		h.respondError(c, err, envelopeOnly, "Failed to build dashboard")
		return
	}
	succeed(c, gin.H{"dashData": data})
}
