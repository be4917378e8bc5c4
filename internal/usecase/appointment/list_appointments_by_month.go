package appointment

import (
	"time"

	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/dto"
)

type ListAppointmentsByMonth struct {
	store domain.Store
}

func NewListAppointmentsByMonth(
	store domain.Store,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		store: store,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	year int,
	month time.Month,
) []dto.AppointmentCardDTO {

	var inMonth []domain.Appointment
	for _, ap := range uc.store.List() {
		if ap.Date.Year == year && ap.Date.Month == month {
			inMonth = append(inMonth, ap)
		}
	}

	return dto.Cards(inMonth)
}
