package services

import (
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/thecooperator/backend/internal/config"
	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
)

// SchedulerService drives the recurring jobs: the nightly scorecard
// recomputation and the morning due-task reminder sweep. A database lock
// keyed by job name and calendar date keeps multiple replicas from
// running the same sweep twice.
type SchedulerService struct {
	db            *gorm.DB
	queue         JobQueue
	notifications *NotificationService
	jobsConfig    *config.JobsConfig
	cronScheduler *cron.Cron
}

func NewSchedulerService(db *gorm.DB, queue JobQueue, notifications *NotificationService, jobsCfg *config.JobsConfig) *SchedulerService {
	return &SchedulerService{
		db:            db,
		queue:         queue,
		notifications: notifications,
		jobsConfig:    jobsCfg,
	}
}

func (s *SchedulerService) Start() {
	s.cronScheduler = cron.New()

	recomputeCron := s.jobsConfig.RecomputeCron
	if recomputeCron == "" {
		recomputeCron = "0 2 * * *"
	}
	reminderCron := s.jobsConfig.ReminderCron
	if reminderCron == "" {
		reminderCron = "0 9 * * *"
	}

	if _, err := s.cronScheduler.AddFunc(recomputeCron, s.runRecompute); err != nil {
		log.Printf("[Scheduler] Failed to add recompute job: %v", err)
	}
	if _, err := s.cronScheduler.AddFunc(reminderCron, s.runReminders); err != nil {
		log.Printf("[Scheduler] Failed to add reminder job: %v", err)
	}

	s.cronScheduler.Start()
	log.Printf("[Scheduler] Started (recompute: %s, reminders: %s)", recomputeCron, reminderCron)
}

func (s *SchedulerService) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}

func (s *SchedulerService) runRecompute() {
	if !s.acquireLock(JobTypeRecomputeScores, time.Now().Format("2006-01-02")) {
		log.Println("[Scheduler] Recompute already claimed by another replica")
		return
	}

	if err := s.queue.EnqueueRecompute(&RecomputeScoresJob{}); err != nil {
		log.Printf("[Scheduler] Failed to enqueue recompute: %v", err)
		LogError("scheduler", "recompute_enqueue", err.Error(), nil, "", "", nil)
	}
}

func (s *SchedulerService) runReminders() {
	if !s.acquireLock(JobTypeEmailNotification, time.Now().Format("2006-01-02")) {
		log.Println("[Scheduler] Reminder sweep already claimed by another replica")
		return
	}

	if err := s.notifications.SendDueTaskReminders(s.queue); err != nil {
		log.Printf("[Scheduler] Reminder sweep failed: %v", err)
		LogError("scheduler", "reminder_sweep", err.Error(), nil, "", "", nil)
	}
}

// acquireLock claims a (job, key) pair by inserting a row protected by a
// unique index. Exactly one replica wins the insert.
func (s *SchedulerService) acquireLock(lockName, lockKey string) bool {
	s.cleanupExpiredLocks()

	hostname, _ := os.Hostname()
	lock := models.SchedulerLock{
		LockName:  lockName,
		LockKey:   lockKey,
		LockedBy:  hostname,
		LockedAt:  time.Now(),
		ExpiresAt: time.Now().Add(48 * time.Hour),
	}

	if err := s.db.Create(&lock).Error; err != nil {
		return false
	}
	return true
}

func (s *SchedulerService) cleanupExpiredLocks() {
	s.db.Where("expires_at < ?", time.Now()).Delete(&models.SchedulerLock{})
}
