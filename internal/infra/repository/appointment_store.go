package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
)

// AppointmentStore is the authoritative in-memory collection of appointments.
//
// Writes are serialized behind one writer lock that stays held across the
// backend call: the local change is applied first and reverted if the
// backend refuses it, so readers never observe a half-applied mutation.
// Callers only ever receive copies.
type AppointmentStore struct {
	mu      sync.RWMutex
	backend domain.Backend
	items   []domain.Appointment
	index   map[string]int
	version uint64

	newID func() string
	now   func() time.Time
}

type StoreOption func(*AppointmentStore)

func WithIDGenerator(fn func() string) StoreOption {
	return func(s *AppointmentStore) { s.newID = fn }
}

func WithClock(fn func() time.Time) StoreOption {
	return func(s *AppointmentStore) { s.now = fn }
}

// NewAppointmentStore builds an empty store. A nil backend keeps the store
// purely local.
func NewAppointmentStore(backend domain.Backend, opts ...StoreOption) *AppointmentStore {
	s := &AppointmentStore{
		backend: backend,
		index:   make(map[string]int),
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --------------------------------------------------
// Sync
// --------------------------------------------------

// Load replaces the local collection with the backend's.
func (s *AppointmentStore) Load(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}

	apps, err := s.backend.ListAppointments(ctx)
	if err != nil {
		return &domain.BackendError{Op: "list", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]domain.Appointment, 0, len(apps))
	s.index = make(map[string]int, len(apps))
	for _, ap := range apps {
		if _, dup := s.index[ap.ID]; dup {
			continue
		}
		s.index[ap.ID] = len(s.items)
		s.items = append(s.items, ap)
	}
	s.version++

	return nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

// List returns the appointments in insertion order.
func (s *AppointmentStore) List() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Appointment, len(s.items))
	copy(out, s.items)
	return out
}

func (s *AppointmentStore) Get(id string) (domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Appointment{}, &domain.TransitionError{Kind: domain.TransitionNotFound, ID: id}
	}
	return s.items[i], nil
}

func (s *AppointmentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Version increases on every committed change.
func (s *AppointmentStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

// Create stores a new pending appointment for an already validated booking.
// Without a backend it cannot fail.
func (s *AppointmentStore) Create(
	ctx context.Context,
	vb domain.ValidatedBooking,
) (domain.Appointment, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	ap := domain.Appointment{
		ID:            s.freshID(),
		Title:         domain.TitleFor(vb.ServiceType),
		RequesterName: vb.RequesterName,
		Office:        vb.Office,
		ServiceType:   vb.ServiceType,
		Status:        domain.InitialStatus(),
		Date:          vb.Date,
		Time:          vb.Time,
		Description:   vb.Description,
		GroupMembers:  vb.GroupMembers,
		Attachment:    vb.Attachment,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	pos := len(s.items)
	s.items = append(s.items, ap)
	s.index[ap.ID] = pos

	if s.backend != nil {
		stored, err := s.backend.CreateAppointment(ctx, ap)
		if err != nil {
			s.items = s.items[:pos]
			delete(s.index, ap.ID)
			return domain.Appointment{}, &domain.BackendError{Op: "create", Err: err}
		}
		if !stored.CreatedAt.IsZero() {
			s.items[pos].CreatedAt = stored.CreatedAt
		}
		if !stored.UpdatedAt.IsZero() {
			s.items[pos].UpdatedAt = stored.UpdatedAt
		}
	}

	s.version++
	return s.items[pos], nil
}

// Transition applies the status workflow to the appointment with id.
func (s *AppointmentStore) Transition(
	ctx context.Context,
	id string,
	target domain.Status,
) (domain.Appointment, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Appointment{}, &domain.TransitionError{
			Kind: domain.TransitionNotFound,
			ID:   id,
			To:   target,
		}
	}

	prev := s.items[i]
	next := prev
	if err := domain.Transition(&next, target, s.now()); err != nil {
		return domain.Appointment{}, err
	}
	s.items[i] = next

	if s.backend != nil {
		stored, err := s.backend.UpdateAppointmentStatus(ctx, id, target)
		if err != nil {
			s.items[i] = prev
			return domain.Appointment{}, &domain.BackendError{Op: "update_status", Err: err}
		}
		if !stored.UpdatedAt.IsZero() {
			s.items[i].UpdatedAt = stored.UpdatedAt
		}
	}

	s.version++
	return s.items[i], nil
}

// freshID draws ids until one is unused. Caller holds the writer lock.
func (s *AppointmentStore) freshID() string {
	for {
		id := s.newID()
		if _, taken := s.index[id]; !taken && id != "" {
			return id
		}
	}
}
