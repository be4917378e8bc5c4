package appointment

import (
	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/dto"
)

type ListAppointments struct {
	store domain.Store
}

func NewListAppointments(store domain.Store) *ListAppointments {
	return &ListAppointments{store: store}
}

func (uc *ListAppointments) Execute() []dto.AppointmentCardDTO {
	return dto.Cards(uc.store.List())
}

type GetAppointment struct {
	store domain.Store
}

func NewGetAppointment(store domain.Store) *GetAppointment {
	return &GetAppointment{store: store}
}

func (uc *GetAppointment) Execute(id string) (dto.AppointmentCardDTO, error) {
	ap, err := uc.store.Get(id)
	if err != nil {
		return dto.AppointmentCardDTO{}, err
	}
	return dto.Card(ap), nil
}
