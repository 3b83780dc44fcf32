package userRepo

import (
	"context"

	"turfadmin/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetAllSafe retrieves all users with the password excluded.
	GetAllSafe(ctx context.Context) ([]models.User, error)
	// GetByID retrieves a user by its ID, password excluded.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Create inserts a new user and sets its ID.
	Create(ctx context.Context, user *models.User) error
	// UpdateWithDocument applies a $set of fields and returns the updated user.
	UpdateWithDocument(ctx context.Context, id string, fields bson.M) (*models.User, error)
	// Delete removes a user by its ID.
	Delete(ctx context.Context, id string) error
	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)
}
