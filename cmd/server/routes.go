package main

import (
	"github.com/gin-gonic/gin"
	"github.com/thecooperator/backend/internal/handlers"
	"github.com/thecooperator/backend/internal/middleware"
	"github.com/thecooperator/backend/internal/models"
	"github.com/thecooperator/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for the public auth endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api/v1")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/login", svc.authHandler.Login)
			auth.POST("/refresh", svc.authHandler.Refresh)
			auth.GET("/config", svc.authHandler.GetAuthConfig)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)
			protected.POST("/auth/change-password", svc.authHandler.ChangePassword)

			// Units
			unitHandler := handlers.NewUnitHandler(models.GetDB())
			protected.GET("/units", unitHandler.List)
			protected.GET("/units/:id", unitHandler.Get)
			protected.POST("/units", unitHandler.Create)
			protected.PUT("/units/:id", unitHandler.Update)
			protected.DELETE("/units/:id", unitHandler.Delete)

			// Members
			memberHandler := handlers.NewMemberHandler(models.GetDB())
			protected.GET("/members", memberHandler.List)
			protected.GET("/members/:id", memberHandler.Get)
			protected.POST("/members", memberHandler.Create)
			protected.PUT("/members/:id", memberHandler.Update)
			protected.DELETE("/members/:id", memberHandler.Delete)

			// Committees
			committeeHandler := handlers.NewCommitteeHandler(models.GetDB())
			protected.GET("/committees", committeeHandler.List)
			protected.GET("/committees/:id", committeeHandler.Get)
			protected.POST("/committees", committeeHandler.Create)
			protected.PUT("/committees/:id", committeeHandler.Update)
			protected.DELETE("/committees/:id", committeeHandler.Delete)
			protected.POST("/committees/:id/members", committeeHandler.AddMemberRole)
			protected.DELETE("/committees/:id/members/:roleId", committeeHandler.RemoveMemberRole)

			// Tasks
			taskHandler := handlers.NewTaskHandler(models.GetDB(), &svc.cfg.Policy)
			protected.GET("/tasks", taskHandler.List)
			protected.GET("/tasks/:id", taskHandler.Get)
			protected.POST("/tasks", taskHandler.Create)
			protected.PUT("/tasks/:id", taskHandler.Update)
			protected.DELETE("/tasks/:id", taskHandler.Delete)
			protected.POST("/tasks/:id/assign", taskHandler.Assign)
			protected.POST("/tasks/:id/unassign", taskHandler.Unassign)

			// Proposals and votes
			proposalHandler := handlers.NewProposalHandler(models.GetDB(), &svc.cfg.Policy)
			protected.GET("/proposals", proposalHandler.List)
			protected.GET("/proposals/:id", proposalHandler.Get)
			protected.POST("/proposals", proposalHandler.Create)
			protected.PUT("/proposals/:id", proposalHandler.Update)
			protected.DELETE("/proposals/:id", proposalHandler.Delete)
			protected.POST("/proposals/:id/votes", proposalHandler.CastVote)
			protected.GET("/proposals/:id/results", proposalHandler.GetResults)
			protected.GET("/proposals/:id/quorum", proposalHandler.GetQuorum)

			// Todos
			todoHandler := handlers.NewTodoHandler(models.GetDB())
			protected.GET("/todos", todoHandler.List)
			protected.GET("/todos/:id", todoHandler.Get)
			protected.POST("/todos", todoHandler.Create)
			protected.PUT("/todos/:id", todoHandler.Update)
			protected.DELETE("/todos/:id", todoHandler.Delete)

			// Metrics
			metricsHandler := handlers.NewMetricsHandler(models.GetDB(), &svc.cfg.Policy)
			protected.GET("/metrics/dashboard", metricsHandler.GetDashboard)
			protected.GET("/metrics/scorecards", metricsHandler.GetScorecards)
			protected.GET("/metrics/scores/:userId", metricsHandler.GetScoreHistory)
		}

		// Admin only routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.AuditLog())
		{
			// Users
			userHandler := handlers.NewUserHandler(models.GetDB())
			admin.GET("/users", userHandler.List)
			admin.GET("/users/:id", userHandler.Get)
			admin.POST("/users", userHandler.Create)
			admin.PUT("/users/:id", userHandler.Update)
			admin.DELETE("/users/:id", userHandler.Delete)

			// Scores
			metricsHandler := handlers.NewMetricsHandler(models.GetDB(), &svc.cfg.Policy)
			admin.POST("/scores/recompute", metricsHandler.RecomputeScores)

			// Jobs
			jobsHandler := handlers.NewJobsHandler(models.GetDB(), svc.cfg)
			admin.POST("/jobs/recompute-scores", jobsHandler.EnqueueRecompute)
			admin.POST("/jobs/send-reminders", jobsHandler.SendReminders)
			admin.GET("/jobs/reminder-countries", jobsHandler.GetReminderCountries)

			// System Logs
			systemLogHandler := handlers.NewSystemLogHandler(models.GetDB())
			admin.GET("/logs", systemLogHandler.List)
			admin.GET("/logs/modules", systemLogHandler.GetModules)
			admin.POST("/logs/cleanup", systemLogHandler.Cleanup)
		}
	}
}
