package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thecooperator/backend/internal/models"
	"github.com/thecooperator/backend/internal/services"
)

// HealthHandler provides the health check endpoint.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of all subsystems.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	// Database check
	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	// Queue mode
	jobQueue := services.GetJobQueue()
	queueMode := "sync"
	if jobQueue != nil && jobQueue.IsAsync() {
		queueMode = "async (Redis)"
	}

	// Open task count
	var openTasks int64
	models.GetDB().Model(&models.Task{}).
		Where("status <> ?", models.TaskStatusDone).
		Count(&openTasks)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "thecooperator",
		"components": gin.H{
			"database":   dbStatus,
			"queue_mode": queueMode,
			"open_tasks": openTasks,
		},
	})
}
