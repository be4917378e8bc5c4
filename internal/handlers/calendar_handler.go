package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consultation-scheduler/internal/calendar"
	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/dto"
	"github.com/BruksfildServices01/consultation-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultation-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/consultation-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// CalendarHandler is stateless: each request restores a calendar.Controller
// from the view and selection the client sends back.
type CalendarHandler struct {
	source  calendar.Source
	byDate  *ucAppointment.ListAppointmentsByDate
	catalog appointment.Catalog
	now     calendar.Clock
}

func NewCalendarHandler(
	source calendar.Source,
	byDate *ucAppointment.ListAppointmentsByDate,
	catalog appointment.Catalog,
	now calendar.Clock,
) *CalendarHandler {
	if now == nil {
		now = time.Now
	}
	return &CalendarHandler{
		source:  source,
		byDate:  byDate,
		catalog: catalog,
		now:     now,
	}
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectDateResponse struct {
	Calendar     dto.CalendarDTO          `json:"calendar"`
	Appointments []dto.AppointmentCardDTO `json:"appointments"`
}

type BookPressResponse struct {
	Form         appointment.BookingRequest `json:"form"`
	Offices      []appointment.Office       `json:"offices"`
	ServiceTypes []appointment.ServiceType  `json:"service_types"`
}

func (h *CalendarHandler) restore(c *gin.Context) (*calendar.Controller, bool) {
	now := h.now()

	view, err := viewFromQuery(c.Query("year"), c.Query("month"), now)
	if err != nil {
		httperr.FromError(c, err)
		return nil, false
	}

	selected, err := selectedFromQuery(c.Query("selected"), now)
	if err != nil {
		httperr.FromError(c, err)
		return nil, false
	}

	ctrl := calendar.NewController(h.source, h.now)
	ctrl.Restore(view, selected)
	return ctrl, true
}

func render(ctrl *calendar.Controller) dto.CalendarDTO {
	return dto.Calendar(ctrl.View(), ctrl.Selected(), ctrl.Render())
}

// ======================================================
// RENDER / NAVIGATE / TODAY
// ======================================================

func (h *CalendarHandler) Render(c *gin.Context) {
	ctrl, ok := h.restore(c)
	if !ok {
		return
	}
	httpresp.OK(c, render(ctrl))
}

func (h *CalendarHandler) Navigate(c *gin.Context) {
	dir, err := calendar.ParseDirection(c.Query("direction"))
	if err != nil {
		httperr.FromError(c, httperr.ErrBusiness("invalid_direction"))
		return
	}

	ctrl, ok := h.restore(c)
	if !ok {
		return
	}

	ctrl.Navigate(dir)
	httpresp.OK(c, render(ctrl))
}

func (h *CalendarHandler) Today(c *gin.Context) {
	ctrl := calendar.NewController(h.source, h.now)
	ctrl.Today()
	httpresp.OK(c, render(ctrl))
}

// ======================================================
// SELECT / BOOK
// ======================================================

func (h *CalendarHandler) Select(c *gin.Context) {
	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date is required.")
		return
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	ctrl := calendar.NewController(h.source, h.now)

	var day []dto.AppointmentCardDTO
	ctrl.OnDateSelect = func(d appointment.Date) {
		day = h.byDate.Execute(d)
	}
	ctrl.SelectDate(date)

	httpresp.OK(c, SelectDateResponse{
		Calendar:     render(ctrl),
		Appointments: day,
	})
}

func (h *CalendarHandler) Book(c *gin.Context) {
	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date is required.")
		return
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	ctrl := calendar.NewController(h.source, h.now)
	ctrl.Restore(calendar.ViewOf(date), date)

	httpresp.OK(c, BookPressResponse{
		Form:         ctrl.BookPress(),
		Offices:      h.catalog.Offices,
		ServiceTypes: h.catalog.ServiceTypes,
	})
}
