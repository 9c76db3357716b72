package cli

import (
	"context"
	"fmt"
	"time"

	api "rentdesk-backend/cmd/api"
	dashboardRepo "rentdesk-backend/internal/dashboard/repository"
	dashboardUsecase "rentdesk-backend/internal/dashboard/usecase"
	documentRepo "rentdesk-backend/internal/document/repository"
	documentUsecase "rentdesk-backend/internal/document/usecase"
	leaseRepo "rentdesk-backend/internal/lease/repository"
	leaseUsecase "rentdesk-backend/internal/lease/usecase"
	paymentRepo "rentdesk-backend/internal/payment/repository"
	paymentUsecase "rentdesk-backend/internal/payment/usecase"
	propertyRepo "rentdesk-backend/internal/property/repository"
	propertyUsecase "rentdesk-backend/internal/property/usecase"
	reminderRepo "rentdesk-backend/internal/reminder/repository"
	reminderUsecase "rentdesk-backend/internal/reminder/usecase"
	"rentdesk-backend/internal/schema"
	tenantRepo "rentdesk-backend/internal/tenant/repository"
	tenantUsecase "rentdesk-backend/internal/tenant/usecase"
	"rentdesk-backend/pkg/config"
	"rentdesk-backend/pkg/database"
	"rentdesk-backend/pkg/lock"
	"rentdesk-backend/pkg/logger"
	"rentdesk-backend/pkg/storage"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	serviceName = "rentdesk"
	lockTTL     = 5 * time.Minute
)

// App holds the process-wide dependencies shared by every command
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	DB       *gorm.DB
	Usecases api.Usecases

	redis *redis.Client
}

// newLogger builds the zap logger from config
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// openDB connects to the configured store and applies the schema
func openDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := schema.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("Database ready", zap.String("driver", cfg.DBDriver))
	return db, nil
}

// NewApp wires repositories, usecases and infrastructure from cfg
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	db, err := openDB(cfg, log)
	if err != nil {
		return nil, err
	}

	store, err := storage.New(ctx, cfg)
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to initialise document storage: %w", err)
	}

	app := &App{Config: cfg, Log: log, DB: db}

	var locker lock.Locker = lock.NewLocalLocker()
	if cfg.RedisAddr != "" {
		app.redis = lock.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := app.redis.Ping(ctx).Err(); err != nil {
			log.Warn("Redis unreachable, falling back to in-process lock", zap.Error(err))
			_ = app.redis.Close()
			app.redis = nil
		} else {
			locker = lock.NewRedisLocker(app.redis, lockTTL, log)
			log.Info("Using Redis generation lock", zap.String("addr", cfg.RedisAddr))
		}
	}

	// Initialize repositories (dependency injection)
	tenants := tenantRepo.NewGormTenantRepository(db)
	properties := propertyRepo.NewGormPropertyRepository(db)
	leases := leaseRepo.NewGormLeaseRepository(db)
	payments := paymentRepo.NewGormPaymentRepository(db)
	reminders := reminderRepo.NewGormReminderRepository(db)
	stats := dashboardRepo.NewGormStatsRepository(db)
	documents := documentRepo.NewGormDocumentRepository(db)

	// Initialize use cases (dependency injection)
	app.Usecases = api.Usecases{
		Tenant:    tenantUsecase.NewTenantUsecase(tenants),
		Property:  propertyUsecase.NewPropertyUsecase(properties),
		Lease:     leaseUsecase.NewLeaseUsecase(leases, log),
		Payment:   paymentUsecase.NewPaymentUsecase(payments),
		Reminder:  reminderUsecase.NewReminderUsecase(reminders, locker, log, reminderUsecase.WithUpcomingWindow(cfg.UpcomingWindowDays)),
		Dashboard: dashboardUsecase.NewDashboardUsecase(stats, nil),
		Document:  documentUsecase.NewDocumentUsecase(documents, store, log),
	}
	return app, nil
}

// Close releases the store handle and Redis client
func (a *App) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if err := database.Close(a.DB); err != nil {
		a.Log.Warn("Failed to close database", zap.Error(err))
	}
	_ = a.Log.Sync()
}
