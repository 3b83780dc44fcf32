package admin

import (
	"context"
	"errors"
	"fmt"

	"turfadmin/database/repository"
	"turfadmin/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ListAppointments returns every appointment, unfiltered.
func (s *DefaultAdminService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := s.Appointments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	return appointments, nil
}

// CancelAppointment cancels an appointment whatever its current status.
func (s *DefaultAdminService) CancelAppointment(ctx context.Context, appointmentID string) error {
	fields := bson.M{
		"cancelled": true,
		"status":    models.StatusCancelled,
	}
	if err := s.Appointments.UpdateFields(ctx, appointmentID, fields); err != nil {
		return appointmentError(err, "failed to cancel appointment")
	}
	s.Logger.Info("Appointment cancelled", zap.String("appointmentID", appointmentID))
	return nil
}

// ConfirmAppointment moves an appointment from pending_admin to confirmed.
// Any other current status is rejected without a write.
func (s *DefaultAdminService) ConfirmAppointment(ctx context.Context, appointmentID string) error {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return appointmentError(err, "failed to fetch appointment")
	}

	next, ok := models.AdminConfirmTarget(appt.Status)
	if !ok {
		s.Logger.Debug("Admin confirm rejected",
			zap.String("appointmentID", appointmentID),
			zap.String("status", string(appt.Status)))
		return validationError(MsgInvalidStatus)
	}

	// The write re-checks the status so a concurrent change cannot be confirmed over.
	match := bson.M{"status": appt.Status}
	if err := s.Appointments.UpdateFieldsWhere(ctx, appointmentID, match, bson.M{"status": next}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return validationError(MsgInvalidStatus)
		}
		return fmt.Errorf("failed to confirm appointment: %w", err)
	}
	s.Logger.Info("Appointment confirmed by admin", zap.String("appointmentID", appointmentID))
	return nil
}

// ChangeAppointmentStatus overwrites the status with any valid value. Unlike
// ConfirmAppointment it ignores the current status.
func (s *DefaultAdminService) ChangeAppointmentStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error {
	if !status.Valid() {
		return validationError(MsgInvalidStatusValue)
	}
	if _, err := s.Appointments.GetByID(ctx, appointmentID); err != nil {
		return appointmentError(err, "failed to fetch appointment")
	}

	if err := s.Appointments.UpdateFields(ctx, appointmentID, bson.M{"status": status}); err != nil {
		return appointmentError(err, "failed to change appointment status")
	}
	s.Logger.Info("Appointment status changed",
		zap.String("appointmentID", appointmentID),
		zap.String("status", string(status)))
	return nil
}

// DeleteAppointment hard-deletes an appointment.
func (s *DefaultAdminService) DeleteAppointment(ctx context.Context, appointmentID string) error {
	if err := s.Appointments.Delete(ctx, appointmentID); err != nil {
		return appointmentError(err, "failed to delete appointment")
	}
	s.Logger.Info("Appointment deleted", zap.String("appointmentID", appointmentID))
	return nil
}

func appointmentError(err error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundError(MsgAppointmentNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
