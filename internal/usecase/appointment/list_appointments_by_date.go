package appointment

import (
	"github.com/BruksfildServices01/consultation-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/dto"
)

type ListAppointmentsByDate struct {
	store domain.Store
}

func NewListAppointmentsByDate(
	store domain.Store,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		store: store,
	}
}

// Execute enumerates the appointments of one day through the event index,
// keeping insertion order.
func (uc *ListAppointmentsByDate) Execute(
	date domain.Date,
) []dto.AppointmentCardDTO {

	apps := uc.store.List()
	idx := calendar.BuildEventIndex(apps)

	ids := idx.IDs(date)
	byID := make(map[string]domain.Appointment, len(ids))
	for _, ap := range apps {
		byID[ap.ID] = ap
	}

	out := make([]dto.AppointmentCardDTO, 0, len(ids))
	for _, id := range ids {
		out = append(out, dto.Card(byID[id]))
	}

	return out
}
