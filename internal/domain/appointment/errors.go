package appointment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("appointment: not found")
	ErrIllegalTransition = errors.New("appointment: illegal status transition")
	ErrBackend           = errors.New("appointment: backend failure")
)

// ===============================
// Validation
// ===============================

const (
	ReasonRequired       = "required"
	ReasonInvalidDate    = "invalid_date"
	ReasonInvalidTime    = "invalid_time"
	ReasonUnknownOffice  = "unknown_office"
	ReasonUnknownService = "unknown_service_type"
	ReasonInvalidImage   = "attachment_type_not_allowed"
)

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every offending field of a rejected booking.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "invalid booking: " + strings.Join(parts, ", ")
}

func (e *ValidationError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// FieldNames returns the offending field names in report order.
func (e *ValidationError) FieldNames() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Field)
	}
	return out
}

// ===============================
// Transition
// ===============================

type TransitionErrorKind int

const (
	TransitionIllegal TransitionErrorKind = iota + 1
	TransitionNotFound
)

type TransitionError struct {
	Kind TransitionErrorKind
	ID   string
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	if e.Kind == TransitionNotFound {
		return fmt.Sprintf("appointment %s not found", e.ID)
	}
	return fmt.Sprintf("appointment %s: cannot move from %s to %s", e.ID, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == TransitionNotFound
	case ErrIllegalTransition:
		return e.Kind == TransitionIllegal
	}
	return false
}

// ===============================
// Backend
// ===============================

type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}
