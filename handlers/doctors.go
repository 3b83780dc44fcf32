package handlers

import (
	"io"
	"net/http"

	"turfadmin/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type availabilityRequest struct {
	DocID string `json:"docId"`
}

// AddDoctorHandler handles POST /api/admin/add-doctor. The body is a
// multipart form with the doctor fields and an "image" file.
func (h *AdminHandler) AddDoctorHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var reg models.DoctorRegistration
	if err := c.ShouldBind(&reg); err != nil {
		logger.Warn("Invalid add-doctor form", zap.Error(err))
		fail(c, http.StatusOK, err.Error())
		return
	}

	// A missing file is reported by the service after the field checks.
	var image io.Reader
	var filename string
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open uploaded image", zap.Error(err))
			fail(c, http.StatusOK, err.Error())
			return
		}
		defer file.Close()
		image, filename = file, fileHeader.Filename
	}

	if _, err := h.Service.AddDoctor(c.Request.Context(), reg, image, filename); err != nil {
		h.respondError(c, err, envelopeOnly, "Failed to add doctor")
		return
	}
	succeed(c, gin.H{"message": "Turf Added"})
}

// ListDoctorsHandler handles GET /api/admin/all-doctors.
func (h *AdminHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.ListDoctors(c.Request.Context())
	if err != nil {
		h.respondError(c, err, envelopeOnly, "Failed to fetch doctors")
		return
	}
	succeed(c, gin.H{"doctors": doctors})
}

// ChangeAvailabilityHandler handles POST /api/admin/change-availability.
func (h *AdminHandler) ChangeAvailabilityHandler(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusOK, err.Error())
		return
	}
	if _, err := h.Service.ChangeAvailability(c.Request.Context(), req.DocID); err != nil {
		h.respondError(c, err, envelopeOnly, "Failed to change availability")
		return
	}
	succeed(c, gin.H{"message": "Availability Changed"})
}

// EditDoctorHandler handles PUT /api/admin/edit-turf/:id.
func (h *AdminHandler) EditDoctorHandler(c *gin.Context) {
	var update map[string]any
	if err := c.ShouldBindJSON(&update); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	turf, err := h.Service.EditDoctor(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.respondError(c, err, httpStatus, "Failed to update turf")
		return
	}
	succeed(c, gin.H{"message": "Turf updated successfully", "turf": turf})
}

// DeleteDoctorHandler handles DELETE /api/admin/delete-turf/:id.
func (h *AdminHandler) DeleteDoctorHandler(c *gin.Context) {
	if err := h.Service.DeleteDoctor(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, httpStatus, "Failed to delete turf")
		return
	}
	succeed(c, gin.H{"message": "Turf deleted successfully"})
}
