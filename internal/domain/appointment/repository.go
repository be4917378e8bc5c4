package appointment

import "context"

// Backend is the remote service the appointment store keeps in sync with.
type Backend interface {
	CreateAppointment(
		ctx context.Context,
		ap Appointment,
	) (Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		id string,
		target Status,
	) (Appointment, error)
}

// Store is the authoritative appointment collection used by the use cases.
type Store interface {
	Create(ctx context.Context, vb ValidatedBooking) (Appointment, error)
	List() []Appointment
	Get(id string) (Appointment, error)
	Transition(ctx context.Context, id string, target Status) (Appointment, error)
}
