package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/consultation-scheduler/internal/config"
	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/dto"
	"github.com/BruksfildServices01/consultation-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultation-scheduler/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/consultation-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/consultation-scheduler/internal/metrics"
)

var testNow = time.Date(2025, time.December, 10, 9, 0, 0, 0, time.UTC)

func newRouter(t *testing.T) (*gin.Engine, *infraRepo.AppointmentStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	store := RegisterRoutes(r, Infra{
		Config: &config.Config{
			BackendTimeout:       time.Second,
			BookingRatePerMinute: 600,
			BookingRateBurst:     50,
		},
		Catalog: domain.DefaultCatalog(),
		Backend: infraRepo.NewAppointmentEchoRepository(0),
		Metrics: metrics.New("test"),
		Clock:   func() time.Time { return testNow },
	})
	return r, store
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func booking() domain.BookingRequest {
	return domain.BookingRequest{
		OfficeID:           "1",
		ServiceType:        "Consultation",
		Date:               "2025-12-15",
		Time:               "10:00",
		ConcernDescription: "x",
	}
}

func TestCreateAndCalendarScenario(t *testing.T) {
	r, store := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/appointments", booking())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	card := decode[dto.AppointmentCardDTO](t, w)
	assert.Equal(t, "Consultation Session", card.Title)
	assert.Equal(t, "pending", card.Status)
	assert.Equal(t, "December 15, 2025", card.DateLabel)
	assert.Equal(t, 1, store.Len())

	w = do(t, r, http.MethodGet, "/api/calendar?year=2025&month=12&selected=2025-12-15", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cal := decode[dto.CalendarDTO](t, w)
	assert.Equal(t, "December 2025", cal.Title)
	assert.Zero(t, len(cal.Cells)%7)
	for _, c := range cal.Cells {
		switch c.Day {
		case 15:
			assert.True(t, c.HasEvent)
			assert.True(t, c.IsSelected)
		case 10:
			assert.True(t, c.IsToday)
			assert.False(t, c.HasEvent)
		default:
			assert.False(t, c.HasEvent, "day %d", c.Day)
		}
	}

	w = do(t, r, http.MethodGet, "/api/appointments?date=2025-12-15", nil)
	list := decode[httpresp.ListResponse[dto.AppointmentCardDTO]](t, w)
	assert.Equal(t, 1, list.Total)
}

func TestCreateValidationFailure(t *testing.T) {
	r, store := newRouter(t)

	req := booking()
	req.OfficeID = ""
	req.Time = "25:00"

	w := do(t, r, http.MethodPost, "/api/appointments", req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decode[httperr.HTTPError](t, w)
	assert.Equal(t, "validation_failed", body.Code)
	require.Len(t, body.Fields, 2)
	assert.Equal(t, "office_id", body.Fields[0].Field)
	assert.Equal(t, "time", body.Fields[1].Field)
	assert.Zero(t, store.Len())
}

func TestStatusTransitions(t *testing.T) {
	r, _ := newRouter(t)

	card := decode[dto.AppointmentCardDTO](t, do(t, r, http.MethodPost, "/api/appointments", booking()))
	path := "/api/appointments/" + card.ID + "/status"

	w := do(t, r, http.MethodPatch, path, gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "#15803D", decode[dto.AppointmentCardDTO](t, w).StatusColor)

	w = do(t, r, http.MethodPatch, path, gin.H{"status": "pending"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPatch, path, gin.H{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPatch, "/api/appointments/nope/status", gin.H{"status": "approved"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/appointments/"+card.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "approved", decode[dto.AppointmentCardDTO](t, w).Status)
}

func TestListByMonth(t *testing.T) {
	r, _ := newRouter(t)

	for _, d := range []string{"2025-12-15", "2026-01-02"} {
		req := booking()
		req.Date = d
		require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/appointments", req).Code)
	}

	w := do(t, r, http.MethodGet, "/api/appointments/month?year=2026&month=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[httpresp.ListResponse[dto.AppointmentCardDTO]](t, w).Total)

	w = do(t, r, http.MethodGet, "/api/appointments/month?year=2026&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_month", decode[httperr.HTTPError](t, w).Code)
}

func TestCalendarNavigateRollsYear(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/calendar/navigate?year=2025&month=12&direction=next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cal := decode[dto.CalendarDTO](t, w)
	assert.Equal(t, 2026, cal.Year)
	assert.Equal(t, time.January, cal.Month)

	w = do(t, r, http.MethodGet, "/api/calendar/navigate?year=2025&month=12&direction=sideways", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarTodaySelectAndBook(t *testing.T) {
	r, _ := newRouter(t)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/appointments", booking()).Code)

	cal := decode[dto.CalendarDTO](t, do(t, r, http.MethodGet, "/api/calendar/today", nil))
	assert.Equal(t, "2025-12-10", cal.Selected)

	w := do(t, r, http.MethodPost, "/api/calendar/select", gin.H{"date": "2025-12-15"})
	require.Equal(t, http.StatusOK, w.Code)
	var sel struct {
		Calendar     dto.CalendarDTO          `json:"calendar"`
		Appointments []dto.AppointmentCardDTO `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sel))
	assert.Equal(t, "2025-12-15", sel.Calendar.Selected)
	assert.Len(t, sel.Appointments, 1)

	w = do(t, r, http.MethodPost, "/api/calendar/book", gin.H{"date": "2026-02-03"})
	require.Equal(t, http.StatusOK, w.Code)
	var book struct {
		Form    domain.BookingRequest `json:"form"`
		Offices []domain.Office       `json:"offices"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, "2026-02-03", book.Form.Date)
	assert.Len(t, book.Offices, 3)
}

func TestCatalogAndOps(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/offices", nil)
	offices := decode[httpresp.ListResponse[domain.Office]](t, w)
	assert.Equal(t, 3, offices.Total)
	assert.Equal(t, "Registrar", offices.Data[2].Name)

	w = do(t, r, http.MethodGet, "/api/service-types", nil)
	assert.Equal(t, 4, decode[httpresp.ListResponse[string]](t, w).Total)

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/health", nil).Code)

	w = do(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_http_requests_total")

	assert.Equal(t, http.StatusServiceUnavailable, do(t, r, http.MethodPost, "/api/attachments", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, r, http.MethodGet, "/api/audit-logs", nil).Code)
}
