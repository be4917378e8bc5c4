package calendar

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
)

// Source yields the current appointment collection.
type Source interface {
	List() []appointment.Appointment
}

type Clock func() time.Time

// Controller holds the per-session calendar state: the month on screen and
// the selected day. Host UIs subscribe to OnDateSelect and OnBookPress.
type Controller struct {
	mu       sync.Mutex
	source   Source
	now      Clock
	view     View
	selected appointment.Date

	OnDateSelect func(appointment.Date)
	OnBookPress  func(appointment.BookingRequest)
}

// NewController starts on today's month with today selected.
func NewController(source Source, now Clock) *Controller {
	if now == nil {
		now = time.Now
	}
	view, today := JumpToToday(now())
	return &Controller{
		source:   source,
		now:      now,
		view:     view,
		selected: today,
	}
}

// Restore positions the controller on a previously rendered state.
func (c *Controller) Restore(view View, selected appointment.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = view
	c.selected = selected
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Controller) Selected() appointment.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

func (c *Controller) Render() []Cell {
	c.mu.Lock()
	view, selected := c.view, c.selected
	c.mu.Unlock()

	return RenderMonth(view, selected, c.source.List(), c.now())
}

func (c *Controller) Prev() View {
	return c.navigate(Prev)
}

func (c *Controller) Next() View {
	return c.navigate(Next)
}

func (c *Controller) Navigate(dir Direction) View {
	return c.navigate(dir)
}

func (c *Controller) navigate(dir Direction) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = NavigateMonth(c.view, dir)
	return c.view
}

func (c *Controller) Today() (View, appointment.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view, c.selected = JumpToToday(c.now())
	return c.view, c.selected
}

// SelectDate marks d as selected and brings its month on screen.
func (c *Controller) SelectDate(d appointment.Date) {
	c.mu.Lock()
	c.selected = d
	c.view = ViewOf(d)
	cb := c.OnDateSelect
	c.mu.Unlock()

	if cb != nil {
		cb(d)
	}
}

// BookPress returns a booking form pre-filled with the selected day.
func (c *Controller) BookPress() appointment.BookingRequest {
	c.mu.Lock()
	req := appointment.BookingRequest{Date: c.selected.String()}
	cb := c.OnBookPress
	c.mu.Unlock()

	if cb != nil {
		cb(req)
	}
	return req
}
