package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"turfadmin/database/repository"
	"turfadmin/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordCost      = 10
	minPasswordLength = 8
)

// AddDoctor provisions a doctor: hash the password, upload the image, parse
// the address, then persist. The steps are not atomic. If anything fails after
// the upload the asset stays on the media host and is recorded as orphaned.
func (s *DefaultAdminService) AddDoctor(ctx context.Context, reg models.DoctorRegistration, image io.Reader, filename string) (*models.Doctor, error) {
	if reg.Name == "" || reg.Email == "" || reg.Password == "" || reg.Speciality == "" ||
		reg.Degree == "" || reg.Experience == "" || reg.About == "" || reg.Fees == "" || reg.Address == "" {
		return nil, validationError(MsgMissingDetails)
	}
	if len(reg.Password) < minPasswordLength {
		return nil, validationError(MsgWeakPassword)
	}
	if image == nil {
		return nil, validationError(MsgImageRequired)
	}

	hash, err := hashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	upload, err := s.Uploader.UploadImage(ctx, image, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to upload doctor image: %w", err)
	}

	doctor, err := buildDoctor(reg, hash, upload.SecureURL)
	if err == nil {
		err = s.Doctors.Create(ctx, doctor)
	}
	if err != nil {
		s.recordOrphan(ctx, upload.PublicID, err)
		return nil, err
	}

	s.Logger.Info("Doctor added",
		zap.String("doctorID", doctor.ID.Hex()),
		zap.String("email", doctor.Email))
	doctor.Password = ""
	return doctor, nil
}

func buildDoctor(reg models.DoctorRegistration, passwordHash, imageURL string) (*models.Doctor, error) {
	var address map[string]any
	if err := json.Unmarshal([]byte(reg.Address), &address); err != nil {
		return nil, fmt.Errorf("failed to parse address: %w", err)
	}
	fees, err := strconv.ParseFloat(strings.TrimSpace(reg.Fees), 64)
	if err != nil {
		return nil, validationError(MsgInvalidFees)
	}

	return &models.Doctor{
		Name:        reg.Name,
		Email:       reg.Email,
		Password:    passwordHash,
		Image:       imageURL,
		Speciality:  reg.Speciality,
		Degree:      reg.Degree,
		Experience:  reg.Experience,
		About:       reg.About,
		Available:   true,
		Fees:        fees,
		Address:     address,
		Date:        time.Now().UnixMilli(),
		SlotsBooked: map[string]any{},
	}, nil
}

func (s *DefaultAdminService) recordOrphan(ctx context.Context, publicID string, cause error) {
	s.Logger.Warn("Doctor provisioning failed after image upload; asset orphaned",
		zap.String("publicID", publicID), zap.Error(cause))
	if s.Orphans == nil {
		return
	}
	if err := s.Orphans.RecordOrphan(ctx, publicID, cause.Error()); err != nil {
		s.Logger.Error("Failed to record orphaned asset", zap.String("publicID", publicID), zap.Error(err))
	}
}

// ListDoctors returns all doctors without their password hashes.
func (s *DefaultAdminService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Doctors.GetAllSafe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	return doctors, nil
}

// EditDoctor applies an arbitrary partial update and returns the result.
func (s *DefaultAdminService) EditDoctor(ctx context.Context, doctorID string, update map[string]any) (*models.Doctor, error) {
	fields, err := prepareUpdate(update, &models.Doctor{}, doctorCoercers)
	if err != nil {
		return nil, err
	}
	doctor, err := s.Doctors.UpdateWithDocument(ctx, doctorID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError(MsgTurfNotFound)
		}
		return nil, fmt.Errorf("failed to update turf: %w", err)
	}
	s.Logger.Info("Turf updated", zap.String("doctorID", doctorID))
	return doctor, nil
}

// DeleteDoctor removes a doctor. Appointments referencing it are kept.
func (s *DefaultAdminService) DeleteDoctor(ctx context.Context, doctorID string) error {
	if err := s.Doctors.Delete(ctx, doctorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError(MsgTurfNotFound)
		}
		return fmt.Errorf("failed to delete turf: %w", err)
	}
	s.Logger.Info("Turf deleted", zap.String("doctorID", doctorID))
	return nil
}

// ChangeAvailability flips a doctor's availability flag.
func (s *DefaultAdminService) ChangeAvailability(ctx context.Context, doctorID string) (*models.Doctor, error) {
	current, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError(MsgDoctorNotFound)
		}
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}

	doctor, err := s.Doctors.UpdateWithDocument(ctx, doctorID, bson.M{"available": !current.Available})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError(MsgDoctorNotFound)
		}
		return nil, fmt.Errorf("failed to change availability: %w", err)
	}
	return doctor, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
