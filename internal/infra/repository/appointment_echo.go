package repository

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
)

// AppointmentEchoRepository acknowledges every request after a fixed delay
// without keeping anything. It stands in for the remote service when no
// database is configured.
type AppointmentEchoRepository struct {
	delay time.Duration
}

func NewAppointmentEchoRepository(delay time.Duration) *AppointmentEchoRepository {
	return &AppointmentEchoRepository{
		delay: delay,
	}
}

func (r *AppointmentEchoRepository) wait(ctx context.Context) error {
	if r.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *AppointmentEchoRepository) CreateAppointment(
	ctx context.Context,
	ap domain.Appointment,
) (domain.Appointment, error) {

	if err := r.wait(ctx); err != nil {
		return domain.Appointment{}, err
	}
	return ap, nil
}

func (r *AppointmentEchoRepository) ListAppointments(
	ctx context.Context,
) ([]domain.Appointment, error) {

	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return []domain.Appointment{}, nil
}

func (r *AppointmentEchoRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id string,
	target domain.Status,
) (domain.Appointment, error) {

	if err := r.wait(ctx); err != nil {
		return domain.Appointment{}, err
	}
	return domain.Appointment{ID: id, Status: target}, nil
}

// Compile-time check
var _ domain.Backend = (*AppointmentEchoRepository)(nil)
