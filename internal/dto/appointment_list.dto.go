package dto

import (
	"time"

	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
)

type OfficeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AppointmentCardDTO is the list-row shape of an appointment.
type AppointmentCardDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	RequesterName string    `json:"requester_name"`
	Office        OfficeDTO `json:"office"`
	ServiceType   string    `json:"service_type"`
	Date          string    `json:"date"`
	DateLabel     string    `json:"date_label"`
	Time          string    `json:"time"`
	Description   string    `json:"description"`
	GroupMembers  string    `json:"group_members,omitempty"`
	Attachment    string    `json:"attachment,omitempty"`
	Status        string    `json:"status"`
	StatusColor   string    `json:"status_color"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func Card(ap appointment.Appointment) AppointmentCardDTO {
	return AppointmentCardDTO{
		ID:            ap.ID,
		Title:         ap.Title,
		RequesterName: ap.RequesterName,
		Office:        OfficeDTO{ID: ap.Office.ID, Name: ap.Office.Name},
		ServiceType:   string(ap.ServiceType),
		Date:          ap.Date.String(),
		DateLabel:     ap.Date.Label(),
		Time:          ap.Time,
		Description:   ap.Description,
		GroupMembers:  ap.GroupMembers,
		Attachment:    ap.Attachment,
		Status:        string(ap.Status),
		StatusColor:   string(ap.Status.Style()),
		CreatedAt:     ap.CreatedAt,
		UpdatedAt:     ap.UpdatedAt,
	}
}

func Cards(apps []appointment.Appointment) []AppointmentCardDTO {
	out := make([]AppointmentCardDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, Card(ap))
	}
	return out
}
