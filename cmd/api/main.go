package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultation-scheduler/internal/audit"
	"github.com/BruksfildServices01/consultation-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/consultation-scheduler/internal/db"
	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/consultation-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/consultation-scheduler/internal/metrics"
	"github.com/BruksfildServices01/consultation-scheduler/internal/middleware"
	"github.com/BruksfildServices01/consultation-scheduler/internal/routes"
	"github.com/BruksfildServices01/consultation-scheduler/internal/storage"
	"github.com/BruksfildServices01/consultation-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if !timezone.SetDefault(cfg.Timezone) {
		log.Printf("unknown APP_TIMEZONE %q, using %s", cfg.Timezone, timezone.DefaultTimezone)
	}

	catalog, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	// --------------------------------------------------
	// Backend
	// --------------------------------------------------
	var (
		db      *gorm.DB
		backend domain.Backend
		sinks   []audit.Sink
	)

	switch cfg.BackendMode {
	case config.BackendPostgres:
		db = dbpkg.NewDB(cfg, catalog)
		backend = infraRepo.NewAppointmentGormRepository(db)
		sinks = append(sinks, audit.New(db))
	case config.BackendEcho:
		backend = infraRepo.NewAppointmentEchoRepository(cfg.BackendDelay)
	}
	log.Printf("appointment backend: %s", cfg.BackendMode)

	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("redis unreachable, audit events stay local: %v", err)
		} else {
			sinks = append(sinks, audit.NewRedisSink(rdb, cfg.RedisChannel))
		}
		cancel()
	}

	auditDispatcher := audit.NewDispatcher(sinks...)

	var attachments *storage.AttachmentStore
	if cfg.S3Enabled() {
		client := storage.NewS3Client(storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		attachments = storage.NewAttachmentStore(client, cfg.S3Bucket)
	}

	limiter := middleware.NewRateLimiter(cfg.BookingRatePerMinute, cfg.BookingRateBurst)
	stopSweeper := make(chan struct{})
	go limiter.RunSweeper(stopSweeper)

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	r := gin.Default()

	routes.RegisterRoutes(r, routes.Infra{
		Config:      cfg,
		Catalog:     catalog,
		Backend:     backend,
		DB:          db,
		Audit:       auditDispatcher,
		Metrics:     metrics.New(cfg.MetricsNamespace),
		Attachments: attachments,
		Limiter:     limiter,
		Clock:       timezone.Now,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	close(stopSweeper)
	auditDispatcher.Close()
}
