package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/dto"
	"github.com/BruksfildServices01/consultation-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultation-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/consultation-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book       *ucAppointment.BookAppointment
	transition *ucAppointment.TransitionAppointment
	list       *ucAppointment.ListAppointments
	byDate     *ucAppointment.ListAppointmentsByDate
	byMonth    *ucAppointment.ListAppointmentsByMonth
	get        *ucAppointment.GetAppointment

	timeout time.Duration
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	transition *ucAppointment.TransitionAppointment,
	list *ucAppointment.ListAppointments,
	byDate *ucAppointment.ListAppointmentsByDate,
	byMonth *ucAppointment.ListAppointmentsByMonth,
	get *ucAppointment.GetAppointment,
	timeout time.Duration,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		transition: transition,
		list:       list,
		byDate:     byDate,
		byMonth:    byMonth,
		get:        get,
		timeout:    timeout,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AppointmentHandler) backendContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req domain.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed booking payload.")
		return
	}

	ctx, cancel := h.backendContext(c)
	defer cancel()

	ap, err := h.book.Execute(ctx, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.Card(ap))
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httpresp.List(c, h.list.Execute())
		return
	}

	date, err := parseDateParam(dateStr)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, h.byDate.Execute(date))
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := parseYear(c.Query("year"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	month, err := parseMonth(c.Query("month"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, h.byMonth.Execute(year, month))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	card, err := h.get.Execute(c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, card)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	target, err := domain.ParseStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if err != nil {
		httperr.BadRequest(c, "invalid_status", err.Error())
		return
	}

	ctx, cancel := h.backendContext(c)
	defer cancel()

	ap, err := h.transition.Execute(ctx, c.Param("id"), target)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Card(ap))
}
