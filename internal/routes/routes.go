package routes

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultation-scheduler/internal/audit"
	"github.com/BruksfildServices01/consultation-scheduler/internal/calendar"
	"github.com/BruksfildServices01/consultation-scheduler/internal/config"
	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/consultation-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/consultation-scheduler/internal/metrics"
	"github.com/BruksfildServices01/consultation-scheduler/internal/middleware"
	"github.com/BruksfildServices01/consultation-scheduler/internal/storage"
	"github.com/BruksfildServices01/consultation-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/consultation-scheduler/internal/usecase/appointment"
)

// Infra carries the process-wide singletons built in main. DB and
// Attachments may be nil.
type Infra struct {
	Config      *config.Config
	Catalog     domain.Catalog
	Backend     domain.Backend
	DB          *gorm.DB
	Audit       *audit.Dispatcher
	Metrics     *metrics.Metrics
	Attachments *storage.AttachmentStore
	Limiter     *middleware.RateLimiter
	Clock       calendar.Clock
}

// RegisterRoutes builds the appointment store, loads it from the backend and
// mounts every endpoint. The store is returned for shutdown and tests.
func RegisterRoutes(r *gin.Engine, in Infra) *infraRepo.AppointmentStore {

	if in.Clock == nil {
		in.Clock = timezone.Now
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(in.Config.CORSOrigins))
	if in.Metrics != nil {
		r.Use(middleware.Metrics(in.Metrics))
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	store := infraRepo.NewAppointmentStore(
		in.Backend,
		infraRepo.WithClock(in.Clock),
	)

	ctx, cancel := context.WithTimeout(context.Background(), in.Config.BackendTimeout)
	if err := store.Load(ctx); err != nil {
		log.Printf("initial appointment load failed, starting empty: %v", err)
	}
	cancel()

	validator := domain.NewValidator(in.Catalog)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(validator, store, in.Audit, in.Metrics)
	transitionUC := ucAppointment.NewTransitionAppointment(store, in.Audit, in.Metrics)
	listUC := ucAppointment.NewListAppointments(store)
	byDateUC := ucAppointment.NewListAppointmentsByDate(store)
	byMonthUC := ucAppointment.NewListAppointmentsByMonth(store)
	getUC := ucAppointment.NewGetAppointment(store)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		transitionUC,
		listUC,
		byDateUC,
		byMonthUC,
		getUC,
		in.Config.BackendTimeout,
	)
	calendarHandler := handlers.NewCalendarHandler(store, byDateUC, in.Catalog, in.Clock)
	catalogHandler := handlers.NewCatalogHandler(in.Catalog)
	attachmentHandler := handlers.NewAttachmentHandler(in.Attachments)
	auditLogsHandler := handlers.NewAuditLogsHandler(in.DB)

	limiter := in.Limiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(in.Config.BookingRatePerMinute, in.Config.BookingRateBurst)
	}

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"appointments": store.Len(),
			"version":      store.Version(),
		})
	})
	if in.Metrics != nil {
		r.GET("/metrics", gin.WrapH(in.Metrics.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/offices", catalogHandler.Offices)
		api.GET("/service-types", catalogHandler.ServiceTypes)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", limiter.Middleware(), appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/month", appointmentHandler.ListByMonth)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

		api.POST("/attachments", limiter.Middleware(), attachmentHandler.Upload)

		// ------------------------------
		// CALENDAR
		// ------------------------------
		api.GET("/calendar", calendarHandler.Render)
		api.GET("/calendar/navigate", calendarHandler.Navigate)
		api.GET("/calendar/today", calendarHandler.Today)
		api.POST("/calendar/select", calendarHandler.Select)
		api.POST("/calendar/book", calendarHandler.Book)

		api.GET("/audit-logs", auditLogsHandler.List)
	}

	return store
}
