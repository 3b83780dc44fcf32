package appointmentRepo

import (
	"context"

	"turfadmin/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetAll retrieves every appointment in natural store order.
	GetAll(ctx context.Context) ([]models.Appointment, error)
	// GetByID retrieves an appointment by its ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// UpdateFields applies a $set of the given fields.
	UpdateFields(ctx context.Context, id string, fields bson.M) error
	// UpdateFieldsWhere applies a $set only while the appointment matches match.
	UpdateFieldsWhere(ctx context.Context, id string, match bson.M, fields bson.M) error
	// Delete removes an appointment by its ID.
	Delete(ctx context.Context, id string) error
	// Count returns the number of appointments.
	Count(ctx context.Context) (int64, error)
}
