package admin

import (
	"context"
	"io"

	appointmentRepo "turfadmin/database/repository/appointment"
	doctorRepo "turfadmin/database/repository/doctor"
	userRepo "turfadmin/database/repository/user"
	"turfadmin/models"
	"turfadmin/services/storage"

	"go.uber.org/zap"
)

// AdminService is the set of operations available to the platform admin.
type AdminService interface {
	// Authentication
	Login(email, password string) (string, error)

	// Appointments
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string) error
	ConfirmAppointment(ctx context.Context, appointmentID string) error
	ChangeAppointmentStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error
	DeleteAppointment(ctx context.Context, appointmentID string) error

	// Doctors
	AddDoctor(ctx context.Context, reg models.DoctorRegistration, image io.Reader, filename string) (*models.Doctor, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	EditDoctor(ctx context.Context, doctorID string, update map[string]any) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
	ChangeAvailability(ctx context.Context, doctorID string) (*models.Doctor, error)

	// Users
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, update map[string]any) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) error

	// Dashboard
	Dashboard(ctx context.Context) (*models.DashboardData, error)
}

// TokenIssuer signs admin session tokens.
type TokenIssuer interface {
	Sign(subject string) (string, error)
}

// Credentials are the configured admin login values.
type Credentials struct {
	Email    string
	Password string
}

// Subject is the token subject proving knowledge of the credentials.
func (c Credentials) Subject() string {
	return c.Email + c.Password
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Credentials  Credentials
	Tokens       TokenIssuer
	Appointments appointmentRepo.AppointmentRepository
	Doctors      doctorRepo.DoctorRepository
	Users        userRepo.UserRepository
	Uploader     storage.ImageUploader
	Orphans      storage.OrphanLedger
	Logger       *zap.Logger
}
