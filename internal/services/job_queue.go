package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hibiken/asynq"
	"github.com/thecooperator/backend/internal/config"
	"github.com/thecooperator/backend/pkg/logger"
)

const (
	JobTypeEmailNotification = "notify:email"
	JobTypeRecomputeScores   = "scores:recompute"
)

// EmailNotificationJob carries a single outbound mail for a user.
type EmailNotificationJob struct {
	UserID  string `json:"user_id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// RecomputeScoresJob asks the worker to rebuild scorecards. An empty
// UserID means all users.
type RecomputeScoresJob struct {
	UserID string `json:"user_id,omitempty"`
}

// JobQueue defines the interface for background job dispatch
type JobQueue interface {
	EnqueueEmail(job *EmailNotificationJob) error
	EnqueueRecompute(job *RecomputeScoresJob) error
	// IsAsync returns true if the queue processes jobs out of process
	IsAsync() bool
	// Close gracefully shuts down the queue
	Close() error
}

// Global job queue instance
var (
	globalJobQueue JobQueue
	jobQueueOnce   sync.Once
)

// InitJobQueue initializes the global job queue based on config
func InitJobQueue(cfg *config.Config) JobQueue {
	jobQueueOnce.Do(func() {
		if cfg.Redis.Enabled {
			queue, err := NewAsyncQueue(&cfg.Redis)
			if err != nil {
				logger.Infof("[JobQueue] Redis unavailable, falling back to sync mode: %v", err)
				globalJobQueue = NewSyncQueue()
			} else {
				logger.Infof("[JobQueue] Async queue initialized with Redis at %s", cfg.Redis.Addr)
				globalJobQueue = queue
			}
		} else {
			logger.Infof("[JobQueue] Sync queue initialized (Redis disabled)")
			globalJobQueue = NewSyncQueue()
		}
	})
	return globalJobQueue
}

// GetJobQueue returns the global job queue instance
func GetJobQueue() JobQueue {
	return globalJobQueue
}

// AsyncQueue implements JobQueue using asynq (Redis-based)
type AsyncQueue struct {
	client *asynq.Client
}

// NewAsyncQueue creates a new Redis-based async queue
func NewAsyncQueue(cfg *config.RedisConfig) (*AsyncQueue, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	client := asynq.NewClient(redisOpt)

	// Verify the connection before handing the queue out
	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()

	_, err := inspector.Queues()
	if err != nil {
		client.Close()
		return nil, err
	}

	return &AsyncQueue{client: client}, nil
}

func (q *AsyncQueue) EnqueueEmail(job *EmailNotificationJob) error {
	return q.enqueue(JobTypeEmailNotification, job)
}

func (q *AsyncQueue) EnqueueRecompute(job *RecomputeScoresJob) error {
	return q.enqueue(JobTypeRecomputeScores, job)
}

func (q *AsyncQueue) enqueue(jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	t := asynq.NewTask(jobType, data)
	info, err := q.client.Enqueue(t,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}

	logger.Infof("[AsyncQueue] Job enqueued: id=%s, type=%s, queue=%s", info.ID, jobType, info.Queue)
	return nil
}

func (q *AsyncQueue) IsAsync() bool {
	return true
}

func (q *AsyncQueue) Close() error {
	return q.client.Close()
}

// SyncQueue implements JobQueue with in-process execution (no Redis)
type SyncQueue struct {
	emailProcessor     func(context.Context, *EmailNotificationJob) error
	recomputeProcessor func(context.Context, *RecomputeScoresJob) error
}

// NewSyncQueue creates a new synchronous queue
func NewSyncQueue() *SyncQueue {
	return &SyncQueue{}
}

// SetProcessors sets the functions used to run jobs in-process
func (q *SyncQueue) SetProcessors(
	email func(context.Context, *EmailNotificationJob) error,
	recompute func(context.Context, *RecomputeScoresJob) error,
) {
	q.emailProcessor = email
	q.recomputeProcessor = recompute
}

// EnqueueEmail runs the job in a goroutine so the caller is not blocked
func (q *SyncQueue) EnqueueEmail(job *EmailNotificationJob) error {
	if q.emailProcessor == nil {
		logger.Infof("[SyncQueue] Warning: no email processor set, job will be dropped")
		return nil
	}

	go func() {
		if err := q.emailProcessor(context.Background(), job); err != nil {
			logger.Infof("[SyncQueue] Email job failed: %v", err)
		}
	}()

	return nil
}

func (q *SyncQueue) EnqueueRecompute(job *RecomputeScoresJob) error {
	if q.recomputeProcessor == nil {
		logger.Infof("[SyncQueue] Warning: no recompute processor set, job will be dropped")
		return nil
	}

	go func() {
		if err := q.recomputeProcessor(context.Background(), job); err != nil {
			logger.Infof("[SyncQueue] Recompute job failed: %v", err)
		}
	}()

	return nil
}

func (q *SyncQueue) IsAsync() bool {
	return false
}

func (q *SyncQueue) Close() error {
	return nil
}
