package admin

import (
	"context"
	"fmt"

	"turfadmin/models"
)

// Dashboard returns entity counts and every appointment, newest insertion
// first. The order is the store's natural order reversed, not a date sort.
func (s *DefaultAdminService) Dashboard(ctx context.Context) (*models.DashboardData, error) {
	doctors, err := s.Doctors.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count doctors: %w", err)
	}
	users, err := s.Users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	appointments, err := s.Appointments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}

	latest := make([]models.Appointment, len(appointments))
	for i, a := range appointments {
		latest[len(appointments)-1-i] = a
	}

	return &models.DashboardData{
		Doctors:            int(doctors),
		Appointments:       len(appointments),
		Patients:           int(users),
		LatestAppointments: latest,
	}, nil
}
