package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thecooperator/backend/internal/config"
	"github.com/thecooperator/backend/internal/services"
	"github.com/thecooperator/backend/pkg/response"
	"gorm.io/gorm"
)

// JobsHandler exposes manual triggers for the scheduled jobs.
type JobsHandler struct {
	notificationService *services.NotificationService
	holidayService      *services.HolidayService
}

func NewJobsHandler(db *gorm.DB, cfg *config.Config) *JobsHandler {
	return &JobsHandler{
		notificationService: services.NewNotificationService(db, &cfg.SMTP, &cfg.Jobs),
		holidayService:      services.NewHolidayService(),
	}
}

// EnqueueRecompute queues a full score recomputation
// POST /api/v1/admin/jobs/recompute-scores
func (h *JobsHandler) EnqueueRecompute(c *gin.Context) {
	queue := services.GetJobQueue()
	if queue == nil {
		response.ServerError(c, "job queue not initialized")
		return
	}

	if err := queue.EnqueueRecompute(&services.RecomputeScoresJob{}); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "recompute queued"})
}

// SendReminders runs the due-task reminder sweep immediately
// POST /api/v1/admin/jobs/send-reminders
func (h *JobsHandler) SendReminders(c *gin.Context) {
	queue := services.GetJobQueue()
	if queue == nil {
		response.ServerError(c, "job queue not initialized")
		return
	}

	if err := h.notificationService.SendDueTaskReminders(queue); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "reminder sweep completed"})
}

// GetReminderCountries lists the business calendars reminders can follow
// GET /api/v1/admin/jobs/reminder-countries
func (h *JobsHandler) GetReminderCountries(c *gin.Context) {
	response.Success(c, h.holidayService.GetSupportedCountries())
}
