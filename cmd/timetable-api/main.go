package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "time/tzdata"

	_ "github.com/Abdullah-819/786Times/api/swagger"
	"github.com/Abdullah-819/786Times/internal/data"
	"github.com/Abdullah-819/786Times/internal/handler"
	internalmiddleware "github.com/Abdullah-819/786Times/internal/middleware"
	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/internal/refresh"
	"github.com/Abdullah-819/786Times/internal/repository"
	"github.com/Abdullah-819/786Times/internal/service"
	"github.com/Abdullah-819/786Times/pkg/cache"
	"github.com/Abdullah-819/786Times/pkg/config"
	"github.com/Abdullah-819/786Times/pkg/database"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/jobs"
	"github.com/Abdullah-819/786Times/pkg/logger"
	corsmiddleware "github.com/Abdullah-819/786Times/pkg/middleware/cors"
	reqidmiddleware "github.com/Abdullah-819/786Times/pkg/middleware/requestid"
	"github.com/Abdullah-819/786Times/pkg/storage"
)

// @title 786Times API
// @version 1.0.0
// @description Timetable companion: section schedules, live lecture status, events and class reminders.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()
	loc := cfg.Location()

	backend, redisClient, closeBackend, err := openBackend(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeBackend()
	store := repository.NewMeteredKVRepository(backend, metrics)

	timetable := data.DefaultTimetable()
	if cfg.Timetable.File != "" {
		override, err := data.LoadTimetableFile(cfg.Timetable.File)
		if err != nil {
			logr.Fatal("failed to load timetable file", zap.String("path", cfg.Timetable.File), zap.Error(err))
		}
		timetable = data.Merge(timetable, override)
	}

	sections := service.NewSectionService(store, service.SectionConfig{
		Key:     cfg.Keys.Section,
		Default: models.SectionCode(cfg.Sections.Default),
		Strict:  cfg.Sections.Strict,
	}, logr)
	events := service.NewEventService(store, service.EventConfig{Key: cfg.Keys.Events}, nil, logr)
	intro := service.NewIntroService(store, service.IntroConfig{Key: cfg.Keys.IntroIndex}, logr)
	schedule := service.NewScheduleService(timetable, data.Sections, sections, metrics, logr)
	venues := service.NewVenueService(timetable, store, service.VenueConfig{Key: cfg.Keys.SlotMode}, logr)
	exports := service.NewExportService(schedule, events, service.ExportConfig{Location: loc}, logr, nil, nil, nil)

	var notifier service.Notifier
	if cfg.Reminders.Notifier == config.NotifierRedis {
		if redisClient == nil {
			redisClient, err = cache.NewRedis(cfg.Redis)
			if err != nil {
				logr.Fatal("failed to connect reminder redis", zap.Error(err))
			}
			defer redisClient.Close() //nolint:errcheck
		}
		notifier = service.NewRedisNotifier(redisClient, cfg.Reminders.Channel)
	}
	reminders := service.NewReminderService(store, notifier, service.ReminderConfig{
		Key:    cfg.Keys.NotificationApproval,
		Offset: service.ReminderOffset{Lead: cfg.Reminders.Lead, Floor: cfg.Reminders.Floor},
		Queue: jobs.QueueConfig{
			Workers:    cfg.Reminders.Workers,
			MaxRetries: cfg.Reminders.Retries,
			RetryDelay: cfg.Reminders.RetryDelay,
		},
	}, metrics, logr)
	reminders.Start(ctx)
	defer reminders.Stop()

	refresher := refresh.New(refresh.Config{
		Interval: cfg.Refresh.Interval,
		Now:      func() time.Time { return time.Now().In(loc) },
		OnChange: metrics.SetRefreshSubscriptions,
	}, logr)
	refresher.Start()
	defer refresher.Stop()

	clock := handler.SystemClock(loc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))
	r.Use(internalmiddleware.WithResponseMeta())

	ops := handler.NewMetricsHandler(metrics, func(ctx context.Context) error {
		_, err := store.Get(ctx, cfg.Keys.Section)
		if err != nil && !errors.Is(err, appErrors.ErrKeyNotFound) {
			return err
		}
		return nil
	})
	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", ops.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r.Group(cfg.APIPrefix), handler.Handlers{
		Sections:  handler.NewSectionHandler(sections, schedule),
		Schedule:  handler.NewScheduleHandler(schedule, refresher, clock, metrics, logr),
		Analytics: handler.NewAnalyticsHandler(schedule),
		Events:    handler.NewEventHandler(events, exports),
		Export:    handler.NewExportHandler(exports, schedule, clock),
		Intro:     handler.NewIntroHandler(intro),
		Reminders: handler.NewReminderHandler(reminders, schedule, clock),
		Venues:    handler.NewVenueHandler(venues, clock),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("storage", backend.Backend()),
			zap.String("timezone", loc.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

// openBackend builds the configured key-value repository. The returned redis
// client is non-nil when the redis driver is in use so the notifier can share it.
func openBackend(ctx context.Context, cfg *config.Config, logr *zap.Logger) (repository.KVBackend, *redis.Client, func(), error) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return repository.NewMemoryKVRepository(), nil, noop, nil
	case config.StorageRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, nil, noop, err
		}
		repo := repository.NewRedisKVRepository(client, cfg.Storage.KeyPrefix)
		return repo, client, func() { _ = client.Close() }, nil
	case config.StoragePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, noop, err
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, noop, err
		}
		return repository.NewPostgresKVRepository(db), nil, func() { _ = db.Close() }, nil
	case config.StorageFile, "":
		files, err := storage.NewLocalStorage(filepath.Dir(cfg.Storage.FilePath))
		if err != nil {
			return nil, nil, noop, err
		}
		return repository.NewFileKVRepository(files, filepath.Base(cfg.Storage.FilePath), logr), nil, noop, nil
	default:
		return nil, nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
