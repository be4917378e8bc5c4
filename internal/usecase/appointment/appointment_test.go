package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/consultation-scheduler/internal/audit"
	"github.com/BruksfildServices01/consultation-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/consultation-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/consultation-scheduler/internal/metrics"
)

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Log(ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

type failingBackend struct{}

func (failingBackend) CreateAppointment(context.Context, domain.Appointment) (domain.Appointment, error) {
	return domain.Appointment{}, errors.New("offline")
}

func (failingBackend) ListAppointments(context.Context) ([]domain.Appointment, error) {
	return nil, nil
}

func (failingBackend) UpdateAppointmentStatus(context.Context, string, domain.Status) (domain.Appointment, error) {
	return domain.Appointment{}, errors.New("offline")
}

var fixedNow = time.Date(2025, time.December, 10, 9, 0, 0, 0, time.UTC)

func validRequest() domain.BookingRequest {
	return domain.BookingRequest{
		OfficeID:           "1",
		ServiceType:        "Consultation",
		Date:               "2025-12-15",
		Time:               "10:00",
		ConcernDescription: "x",
	}
}

func newStore(backend domain.Backend) *infraRepo.AppointmentStore {
	return infraRepo.NewAppointmentStore(backend, infraRepo.WithClock(func() time.Time { return fixedNow }))
}

func TestBookAppointmentDecember15Scenario(t *testing.T) {
	store := newStore(nil)
	sink := &recordingSink{}
	dispatcher := audit.NewDispatcher(sink)
	m := metrics.New("test")

	book := NewBookAppointment(domain.NewValidator(domain.DefaultCatalog()), store, dispatcher, m)

	ap, err := book.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	dispatcher.Close()

	assert.Equal(t, "Consultation Session", ap.Title)
	assert.Equal(t, domain.StatusPending, ap.Status)
	assert.Equal(t, "Guidance Office", ap.Office.Name)
	assert.Equal(t, domain.DefaultRequesterName, ap.RequesterName)

	cells := calendar.RenderMonth(
		calendar.View{Year: 2025, Month: time.December},
		domain.Date{},
		store.List(),
		fixedNow,
	)
	for _, c := range cells {
		if c.Day == 15 {
			assert.True(t, c.HasEvent)
		} else if !c.IsBlank() {
			assert.False(t, c.HasEvent, "day %d", c.Day)
		}
	}

	require.Len(t, sink.events, 1)
	assert.Equal(t, "appointment_created", sink.events[0].Action)
	assert.Equal(t, ap.ID, sink.events[0].EntityID)
}

func TestBookAppointmentRejectsInvalidWithoutSideEffects(t *testing.T) {
	store := newStore(nil)
	book := NewBookAppointment(domain.NewValidator(domain.DefaultCatalog()), store, nil, nil)

	req := validRequest()
	req.ConcernDescription = "   "

	_, err := book.Execute(context.Background(), req)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"concern_description"}, verr.FieldNames())
	assert.Zero(t, store.Len())
}

func TestBookAppointmentBackendFailure(t *testing.T) {
	store := newStore(failingBackend{})
	book := NewBookAppointment(domain.NewValidator(domain.DefaultCatalog()), store, nil, nil)

	_, err := book.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrBackend)
	assert.Zero(t, store.Len())
}

func TestTransitionAppointment(t *testing.T) {
	store := newStore(nil)
	sink := &recordingSink{}
	dispatcher := audit.NewDispatcher(sink)

	book := NewBookAppointment(domain.NewValidator(domain.DefaultCatalog()), store, nil, nil)
	transition := NewTransitionAppointment(store, dispatcher, metrics.New("test"))

	ap, err := book.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	got, err := transition.Execute(context.Background(), ap.ID, domain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)

	_, err = transition.Execute(context.Background(), ap.ID, domain.StatusPending)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	_, err = transition.Execute(context.Background(), "missing", domain.StatusApproved)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	dispatcher.Close()
	require.Len(t, sink.events, 1)
	assert.Equal(t, "appointment_approved", sink.events[0].Action)
}

func TestListUseCases(t *testing.T) {
	store := newStore(nil)
	book := NewBookAppointment(domain.NewValidator(domain.DefaultCatalog()), store, nil, nil)

	for _, date := range []string{"2025-12-15", "2025-12-20", "2026-01-05", "2025-12-15"} {
		req := validRequest()
		req.Date = date
		_, err := book.Execute(context.Background(), req)
		require.NoError(t, err)
	}

	assert.Len(t, NewListAppointments(store).Execute(), 4)

	byDate := NewListAppointmentsByDate(store).Execute(domain.Date{Year: 2025, Month: time.December, Day: 15})
	require.Len(t, byDate, 2)
	assert.Equal(t, "December 15, 2025", byDate[0].DateLabel)

	assert.Len(t, NewListAppointmentsByMonth(store).Execute(2025, time.December), 3)
	assert.Len(t, NewListAppointmentsByMonth(store).Execute(2026, time.January), 1)
	assert.Empty(t, NewListAppointmentsByMonth(store).Execute(2026, time.February))

	card, err := NewGetAppointment(store).Execute(byDate[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "#B45309", card.StatusColor)

	_, err = NewGetAppointment(store).Execute("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
