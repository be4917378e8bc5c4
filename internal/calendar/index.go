package calendar

import "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"

// EventIndex maps a calendar day to the ids of the appointments on it,
// in the order the appointments were given.
type EventIndex map[appointment.Date][]string

func BuildEventIndex(appointments []appointment.Appointment) EventIndex {
	idx := make(EventIndex, len(appointments))
	for _, ap := range appointments {
		idx[ap.Date] = append(idx[ap.Date], ap.ID)
	}
	return idx
}

func (idx EventIndex) Has(d appointment.Date) bool {
	return len(idx[d]) > 0
}

func (idx EventIndex) IDs(d appointment.Date) []string {
	return idx[d]
}

// Len is the number of distinct days with at least one appointment.
func (idx EventIndex) Len() int {
	return len(idx)
}
