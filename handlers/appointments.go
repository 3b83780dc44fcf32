package handlers

import (
	"net/http"

	"turfadmin/models"

	"github.com/gin-gonic/gin"
)

type appointmentRequest struct {
	AppointmentID string `json:"appointmentId"`
}

type statusRequest struct {
	AppointmentID string `json:"appointmentId"`
	Status        string `json:"status"`
}

// ListAppointmentsHandler handles GET /api/admin/appointments.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	appointments, err := h.Service.ListAppointments(c.Request.Context())
	if err != nil {
		h.respondError(c, err, envelopeOnly, "Failed to fetch appointments")
		return
	}
	succeed(c, gin.H{"appointments": appointments})
}

// CancelAppointmentHandler handles POST /api/admin/cancel-appointment.
func (h *AdminHandler) CancelAppointmentHandler(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusOK, err.Error())
		return
	}
	if err := h.Service.CancelAppointment(c.Request.Context(), req.AppointmentID); err != nil {
		h.respondError(c, err, envelopeOnly, "Failed to cancel appointment")
		return
	}
	succeed(c, gin.H{"message": "Booking Cancelled"})
}

// ConfirmAppointmentHandler handles POST /api/admin/confirm-appointment.
func (h *AdminHandler) ConfirmAppointmentHandler(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusOK, err.Error())
		return
	}
	if err := h.Service.ConfirmAppointment(c.Request.Context(), req.AppointmentID); err != nil {
		h.respondError(c, err, envelopeOnly, "Failed to confirm appointment")
		return
	}
	succeed(c, gin.H{"message": "Appointment confirmed by admin"})
}

// ChangeAppointmentStatusHandler handles POST /api/admin/change-appointment-status.
func (h *AdminHandler) ChangeAppointmentStatusHandler(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusOK, err.Error())
		return
	}
	status := models.AppointmentStatus(req.Status)
	if err := h.Service.ChangeAppointmentStatus(c.Request.Context(), req.AppointmentID, status); err != nil {
		h.respondError(c, err, envelopeOnly, "Failed to change appointment status")
		return
	}
	succeed(c, gin.H{"message": "Appointment status changed to " + req.Status})
}

// DeleteAppointmentHandler handles DELETE /api/admin/delete-appointment.
func (h *AdminHandler) DeleteAppointmentHandler(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Service.DeleteAppointment(c.Request.Context(), req.AppointmentID); err != nil {
		h.respondError(c, err, httpStatus, "Failed to delete appointment")
		return
	}
	succeed(c, nil)
}
