package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
)

// View identifies the month on screen.
type View struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func ViewOf(d appointment.Date) View {
	return View{Year: d.Year, Month: d.Month}
}

func (v View) Title() string {
	return fmt.Sprintf("%s %d", v.Month, v.Year)
}

type Direction string

const (
	Prev Direction = "prev"
	Next Direction = "next"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Prev:
		return Prev, nil
	case Next:
		return Next, nil
	default:
		return "", fmt.Errorf("unknown direction: %q", s)
	}
}

// NavigateMonth moves exactly one calendar month, rolling the year over.
func NavigateMonth(v View, dir Direction) View {
	step := 1
	if dir == Prev {
		step = -1
	}
	t := time.Date(v.Year, v.Month+time.Month(step), 1, 0, 0, 0, 0, time.UTC)
	return View{Year: t.Year(), Month: t.Month()}
}

func JumpToToday(now time.Time) (View, appointment.Date) {
	today := appointment.DateOf(now)
	return ViewOf(today), today
}

// RenderMonth layers selection and event markers over the base grid of view.
func RenderMonth(
	view View,
	selected appointment.Date,
	appointments []appointment.Appointment,
	now time.Time,
) []Cell {
	cells := GenerateMonthGrid(view.Year, view.Month, now)
	idx := BuildEventIndex(appointments)

	for i := range cells {
		if cells[i].IsBlank() {
			continue
		}
		d := appointment.Date{Year: view.Year, Month: view.Month, Day: cells[i].Day}
		cells[i].IsSelected = d == selected
		cells[i].HasEvent = idx.Has(d)
	}

	return cells
}

// MonthTitle is the calendar header label, e.g. "December 2025".
func MonthTitle(v View) string {
	return v.Title()
}
