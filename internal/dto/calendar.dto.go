package dto

import (
	"time"

	"github.com/BruksfildServices01/consultation-scheduler/internal/calendar"
	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
)

type CalendarCellDTO struct {
	Day        int  `json:"day"`
	IsToday    bool `json:"is_today"`
	IsSelected bool `json:"is_selected"`
	HasEvent   bool `json:"has_event"`
}

type CalendarDTO struct {
	Year     int               `json:"year"`
	Month    time.Month        `json:"month"`
	Title    string            `json:"title"`
	Selected string            `json:"selected"`
	Weeks    int               `json:"weeks"`
	Cells    []CalendarCellDTO `json:"cells"`
}

func Calendar(view calendar.View, selected appointment.Date, cells []calendar.Cell) CalendarDTO {
	out := CalendarDTO{
		Year:  view.Year,
		Month: view.Month,
		Title: calendar.MonthTitle(view),
		Weeks: len(cells) / calendar.DaysPerWeek,
		Cells: make([]CalendarCellDTO, 0, len(cells)),
	}
	if !selected.IsZero() {
		out.Selected = selected.String()
	}
	for _, c := range cells {
		out.Cells = append(out.Cells, CalendarCellDTO{
			Day:        c.Day,
			IsToday:    c.IsToday,
			IsSelected: c.IsSelected,
			HasEvent:   c.HasEvent,
		})
	}
	return out
}
