package appointment

import (
	"context"
	"log"

	"github.com/BruksfildServices01/consultation-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/metrics"
)

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	validator *domain.Validator
	store     domain.Store
	audit     *audit.Dispatcher
	metrics   *metrics.Metrics
}

func NewBookAppointment(
	validator *domain.Validator,
	store domain.Store,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
) *BookAppointment {
	return &BookAppointment{
		validator: validator,
		store:     store,
		audit:     audit,
		metrics:   metrics,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	req domain.BookingRequest,
) (domain.Appointment, error) {

	// --------------------------------------------------
	// 1. Validation (all or nothing)
	// --------------------------------------------------
	vb, err := uc.validator.Validate(req)
	if err != nil {
		uc.metrics.ObserveValidationFailure(err)
		return domain.Appointment{}, err
	}

	// --------------------------------------------------
	// 2. Store (id + pending status assigned there)
	// --------------------------------------------------
	ap, err := uc.store.Create(ctx, vb)
	if err != nil {
		log.Printf("book appointment: %v", err)
		return domain.Appointment{}, err
	}

	uc.metrics.ObserveBooking(ap)

	// --------------------------------------------------
	// 3. Audit
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: ap.ID,
			Metadata: map[string]string{
				"office":       ap.Office.ID,
				"service_type": string(ap.ServiceType),
				"date":         ap.Date.String(),
				"time":         ap.Time,
			},
		})
	}

	return ap, nil
}
