package handlers

import (
	"net/http"

	"turfadmin/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// failureMode selects how a handler maps errors to HTTP statuses. The admin
// panel reads the envelope's success flag on most endpoints, so those always
// answer 200. The CRUD endpoints added later report proper statuses.
type failureMode int

const (
	envelopeOnly failureMode = iota
	httpStatus
)

func succeed(c *gin.Context, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["success"] = true
	c.JSON(http.StatusOK, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func statusFor(err error, mode failureMode) int {
	if mode == envelopeOnly {
		return http.StatusOK
	}
	switch {
	case admin.IsNotFound(err):
		return http.StatusNotFound
	case admin.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes the failure envelope. Domain errors are
// expected outcomes and logged at warn level.
func (h *AdminHandler) respondError(c *gin.Context, err error, mode failureMode, msg string) {
	logger := getLogger(c, h.Logger)
	if admin.IsDomain(err) {
		logger.Warn(msg, zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		logger.Error(msg, zap.String("path", c.FullPath()), zap.Error(err))
	}
	fail(c, statusFor(err, mode), err.Error())
}
