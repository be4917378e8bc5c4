// Package calendar projects appointments onto a month grid.
package calendar

import (
	"time"

	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
)

const DaysPerWeek = 7

// Cell is one slot of a month grid. Day 0 marks leading/trailing padding.
type Cell struct {
	Day        int  `json:"day,omitempty"`
	IsToday    bool `json:"is_today"`
	IsSelected bool `json:"is_selected"`
	HasEvent   bool `json:"has_event"`
}

func (c Cell) IsBlank() bool {
	return c.Day == 0
}

// DaysIn returns the number of days of month, computed as day 0 of the
// following month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset is the weekday (0 = Sunday) of the 1st of month.
func FirstWeekdayOffset(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// GenerateMonthGrid returns whole weeks: leading blanks, one cell per day,
// trailing blanks. Only IsToday is filled in, relative to now.
func GenerateMonthGrid(year int, month time.Month, now time.Time) []Cell {
	days := DaysIn(year, month)
	offset := FirstWeekdayOffset(year, month)
	total := (days + offset + DaysPerWeek - 1) / DaysPerWeek * DaysPerWeek

	today := appointment.DateOf(now)

	cells := make([]Cell, total)
	for d := 1; d <= days; d++ {
		cells[offset+d-1] = Cell{
			Day:     d,
			IsToday: today == appointment.Date{Year: year, Month: month, Day: d},
		}
	}

	return cells
}
