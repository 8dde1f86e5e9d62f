package main

import (
	"context"

	"github.com/thecooperator/backend/internal/config"
	"github.com/thecooperator/backend/internal/handlers"
	"github.com/thecooperator/backend/internal/models"
	"github.com/thecooperator/backend/internal/services"
	"github.com/thecooperator/backend/internal/utils"
	"github.com/thecooperator/backend/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	cfg         *config.Config
	jobQueue    services.JobQueue
	worker      *services.Worker
	scheduler   *services.SchedulerService
	authHandler *handlers.AuthHandler
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

	// Seed demo data
	if err := models.SeedDemoData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed demo data")
	}

	// Initialize system logger
	services.InitSystemLogger(models.GetDB())

	// Start system log cleanup scheduler
	services.StartLogCleanupScheduler(models.GetDB())

	// Job processors
	scoreService := services.NewScoreService(models.GetDB(), &cfg.Policy)
	notificationService := services.NewNotificationService(models.GetDB(), &cfg.SMTP, &cfg.Jobs)

	processEmail := notificationService.ProcessEmailJob
	processRecompute := func(ctx context.Context, job *services.RecomputeScoresJob) error {
		if job.UserID != "" {
			_, err := scoreService.RecomputeUser(job.UserID)
			return err
		}
		count, err := scoreService.RecomputeAll()
		if err != nil {
			return err
		}
		logger.Infof("Recomputed scores for %d users", count)
		return nil
	}

	// Initialize job queue (uses Redis if enabled, otherwise sync mode)
	jobQueue := services.InitJobQueue(cfg)
	if syncQueue, ok := jobQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessors(processEmail, processRecompute)
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessors(processEmail, processRecompute)
			worker.Start()
		}
	}

	// Start the cron scheduler for recurring jobs
	scheduler := services.NewSchedulerService(models.GetDB(), jobQueue, notificationService, &cfg.Jobs)
	scheduler.Start()

	// Create default admin user
	authHandler := handlers.NewAuthHandler(models.GetDB(), cfg)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		cfg:         cfg,
		jobQueue:    jobQueue,
		worker:      worker,
		scheduler:   scheduler,
		authHandler: authHandler,
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.jobQueue != nil {
		s.jobQueue.Close()
	}
	logger.Info().Msg("All services stopped")
}
