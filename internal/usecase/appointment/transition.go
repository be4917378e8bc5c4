package appointment

import (
	"context"
	"errors"
	"log"

	"github.com/BruksfildServices01/consultation-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/metrics"
)

type TransitionAppointment struct {
	store   domain.Store
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func NewTransitionAppointment(
	store domain.Store,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
) *TransitionAppointment {
	return &TransitionAppointment{
		store:   store,
		audit:   audit,
		metrics: metrics,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	target domain.Status,
) (domain.Appointment, error) {

	before, err := uc.store.Get(appointmentID)
	if err != nil {
		uc.metrics.ObserveTransition(target, err)
		return domain.Appointment{}, err
	}

	ap, err := uc.store.Transition(ctx, appointmentID, target)
	uc.metrics.ObserveTransition(target, err)
	if err != nil {
		if errors.Is(err, domain.ErrBackend) {
			log.Printf("transition appointment %s: %v", appointmentID, err)
		}
		return domain.Appointment{}, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_" + string(target),
			Entity:   "appointment",
			EntityID: ap.ID,
			Metadata: map[string]string{
				"from": string(before.Status),
				"to":   string(ap.Status),
			},
		})
	}

	return ap, nil
}
