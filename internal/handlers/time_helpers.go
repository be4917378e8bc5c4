package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/consultation-scheduler/internal/calendar"
	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/httperr"
)

// --------------------------------------------------
// Query parsing (dates are office-local calendar days)
// --------------------------------------------------

func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1 || y > 9999 {
		return 0, httperr.ErrBusiness("invalid_year")
	}
	return y, nil
}

func parseMonth(s string) (time.Month, error) {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || m < 1 || m > 12 {
		return 0, httperr.ErrBusiness("invalid_month")
	}
	return time.Month(m), nil
}

func parseDateParam(s string) (appointment.Date, error) {
	d, err := appointment.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return appointment.Date{}, httperr.ErrBusiness("invalid_date")
	}
	return d, nil
}

// viewFromQuery falls back to the month of now when year and month are both
// absent.
func viewFromQuery(yearStr, monthStr string, now time.Time) (calendar.View, error) {
	if yearStr == "" && monthStr == "" {
		v, _ := calendar.JumpToToday(now)
		return v, nil
	}

	year, err := parseYear(yearStr)
	if err != nil {
		return calendar.View{}, err
	}
	month, err := parseMonth(monthStr)
	if err != nil {
		return calendar.View{}, err
	}
	return calendar.View{Year: year, Month: month}, nil
}

// selectedFromQuery defaults to today when absent.
func selectedFromQuery(s string, now time.Time) (appointment.Date, error) {
	if s == "" {
		return appointment.DateOf(now), nil
	}
	return parseDateParam(s)
}
