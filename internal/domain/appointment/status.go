package appointment

import "fmt"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
)

// InitialStatus is assigned to every new booking; nothing is auto-approved.
func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRescheduled, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

// ===============================
// Transitions
// ===============================

var allowedTransitions = map[Status]map[Status]bool{
	StatusPending:     {StatusApproved: true, StatusRescheduled: true, StatusCancelled: true},
	StatusApproved:    {StatusRescheduled: true, StatusCancelled: true},
	StatusRescheduled: {StatusApproved: true, StatusCancelled: true},
	StatusCancelled:   {},
}

func CanTransition(from, to Status) bool {
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// Targets lists the statuses reachable from s in a stable order.
func (s Status) Targets() []Status {
	out := make([]Status, 0, 3)
	for _, candidate := range []Status{StatusPending, StatusApproved, StatusRescheduled, StatusCancelled} {
		if CanTransition(s, candidate) {
			out = append(out, candidate)
		}
	}
	return out
}

func (s Status) IsTerminal() bool {
	return len(s.Targets()) == 0
}

// ===============================
// Presentation
// ===============================

// Style is the colour token of a status badge.
type Style string

const (
	StylePending     Style = "#B45309"
	StyleApproved    Style = "#15803D"
	StyleRescheduled Style = "#961BB5"
	StyleFallback    Style = "#B91C1C"
)

// Style is total: unknown values get the fallback token so new statuses
// never break rendering.
func (s Status) Style() Style {
	switch s {
	case StatusPending:
		return StylePending
	case StatusApproved:
		return StyleApproved
	case StatusRescheduled:
		return StyleRescheduled
	default:
		return StyleFallback
	}
}
