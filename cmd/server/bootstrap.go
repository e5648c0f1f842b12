package main

import (
	"github.com/teamswap/teamswap/internal/config"
	"github.com/teamswap/teamswap/internal/handlers"
	"github.com/teamswap/teamswap/internal/models"
	"github.com/teamswap/teamswap/internal/services"
	"github.com/teamswap/teamswap/internal/utils"
	"github.com/teamswap/teamswap/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	cfg                 *config.Config
	notificationService *services.NotificationService
	reconcileService    *services.ReconcileService
	taskQueue           services.TaskQueue
	worker              *services.Worker
	authHandler         *handlers.AuthHandler
	eventsHandler       *handlers.EventsHandler
	notificationHandler *handlers.NotificationHandler
	applicationHandler  *handlers.ApplicationHandler
	swapHandler         *handlers.SwapHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize task queue (uses Redis if enabled, otherwise sync mode)
	taskQueue := services.InitTaskQueue(cfg)
	notificationService := services.NewNotificationService(models.GetDB(), taskQueue)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(notificationService.Deliver)
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(notificationService.Deliver)
			worker.Start()
		}
	}

	// Start the reconcile scheduler
	reconcileService := services.NewReconcileService(models.GetDB())
	if cfg.Reconcile.Enabled {
		if err := reconcileService.StartScheduler(cfg.Reconcile.Cron); err != nil {
			logger.Warn().Err(err).Msg("Failed to start reconcile scheduler")
		}
	}

	return &appServices{
		cfg:                 cfg,
		notificationService: notificationService,
		reconcileService:    reconcileService,
		taskQueue:           taskQueue,
		worker:              worker,
		authHandler:         handlers.NewAuthHandler(models.GetDB(), cfg),
		eventsHandler:       handlers.NewEventsHandler(services.GetEventHub()),
		notificationHandler: handlers.NewNotificationHandler(notificationService),
		applicationHandler:  handlers.NewApplicationHandler(models.GetDB(), notificationService),
		swapHandler:         handlers.NewSwapHandler(models.GetDB(), notificationService),
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	s.reconcileService.StopScheduler()

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
	logger.Info().Msg("Shutdown complete")
}
