package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []Status{StatusPending, StatusApproved, StatusRescheduled, StatusCancelled}

func TestCanTransitionTable(t *testing.T) {
	allowed := map[Status][]Status{
		StatusPending:     {StatusApproved, StatusRescheduled, StatusCancelled},
		StatusApproved:    {StatusRescheduled, StatusCancelled},
		StatusRescheduled: {StatusApproved, StatusCancelled},
		StatusCancelled:   nil,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition(Status("archived"), StatusApproved))
	assert.False(t, CanTransition(StatusPending, Status("archived")))
}

func TestCancelledIsTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.Empty(t, StatusCancelled.Targets())
	assert.False(t, StatusPending.IsTerminal())
	assert.Equal(t, []Status{StatusApproved, StatusRescheduled, StatusCancelled}, StatusPending.Targets())
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("done")
	assert.Error(t, err)
	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, StylePending, StatusPending.Style())
	assert.Equal(t, StyleApproved, StatusApproved.Style())
	assert.Equal(t, StyleRescheduled, StatusRescheduled.Style())
	assert.Equal(t, StyleFallback, StatusCancelled.Style())
	assert.Equal(t, StyleFallback, Status("on_hold").Style())
}

func TestTransitionAction(t *testing.T) {
	created := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)
	ap := &Appointment{ID: "a1", Status: StatusPending, UpdatedAt: created}

	require.NoError(t, Transition(ap, StatusApproved, now))
	assert.Equal(t, StatusApproved, ap.Status)
	assert.Equal(t, now, ap.UpdatedAt)

	require.NoError(t, Transition(ap, StatusCancelled, now))

	err := Transition(ap, StatusApproved, now.Add(time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, StatusCancelled, ap.Status)
	assert.Equal(t, now, ap.UpdatedAt)

	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, TransitionIllegal, terr.Kind)
	assert.Equal(t, StatusCancelled, terr.From)
	assert.Equal(t, StatusApproved, terr.To)
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
