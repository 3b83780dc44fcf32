package admin

import (
	"context"
	"errors"
	"fmt"

	"turfadmin/database/repository"
	"turfadmin/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ListUsers returns every user without password hashes.
func (s *DefaultAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Users.GetAllSafe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// CreateUser inserts a user, filling in the platform's profile defaults.
func (s *DefaultAdminService) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.Name == "" || user.Email == "" || user.Password == "" {
		return nil, validationError(MsgMissingDetails)
	}

	hash, err := hashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash
	user.ID = primitive.NilObjectID
	applyUserDefaults(&user)

	if err := s.Users.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.Logger.Info("User created", zap.String("userID", user.ID.Hex()))

	user.Password = ""
	return &user, nil
}

func applyUserDefaults(u *models.User) {
	if u.Image == "" {
		u.Image = models.DefaultUserImage
	}
	if u.Address == nil {
		u.Address = map[string]any{"line1": "", "line2": ""}
	}
	if u.Gender == "" {
		u.Gender = models.DefaultUserGender
	}
	if u.DOB == "" {
		u.DOB = models.DefaultUserDOB
	}
	if u.Phone == "" {
		u.Phone = models.DefaultUserPhone
	}
}

// UpdateUser applies an arbitrary partial update and returns the result.
func (s *DefaultAdminService) UpdateUser(ctx context.Context, userID string, update map[string]any) (*models.User, error) {
	fields, err := prepareUpdate(update, &models.User{}, nil)
	if err != nil {
		return nil, err
	}
	user, err := s.Users.UpdateWithDocument(ctx, userID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError(MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user. The user's appointments are left untouched.
func (s *DefaultAdminService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.Users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError(MsgUserNotFound)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.Logger.Info("User deleted", zap.String("userID", userID))
	return nil
}
