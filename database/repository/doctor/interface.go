package doctorRepo

import (
	"context"

	"turfadmin/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	// GetAllSafe retrieves all doctors with the password excluded.
	GetAllSafe(ctx context.Context) ([]models.Doctor, error)
	// GetByID retrieves a doctor by its ID, password excluded.
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	// Create inserts a new doctor and sets its ID.
	Create(ctx context.Context, doctor *models.Doctor) error
	// UpdateWithDocument applies a $set of fields and returns the updated doctor.
	UpdateWithDocument(ctx context.Context, id string, fields bson.M) (*models.Doctor, error)
	// Delete removes a doctor by its ID.
	Delete(ctx context.Context, id string) error
	// Count returns the number of doctors.
	Count(ctx context.Context) (int64, error)
}
