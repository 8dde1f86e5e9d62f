package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hibiken/asynq"
	"github.com/thecooperator/backend/internal/config"
	"github.com/thecooperator/backend/pkg/logger"
)

// Worker processes async jobs from the queue
type Worker struct {
	server             *asynq.Server
	mux                *asynq.ServeMux
	emailProcessor     func(context.Context, *EmailNotificationJob) error
	recomputeProcessor func(context.Context, *RecomputeScoresJob) error
	wg                 sync.WaitGroup
	running            bool
	mu                 sync.Mutex
}

// NewWorker creates a new worker instance
func NewWorker(cfg *config.RedisConfig) *Worker {
	if !cfg.Enabled {
		return nil
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Infof("[Worker] Error processing job %s: %v", task.Type(), err)
			}),
		},
	)

	return &Worker{
		server: server,
		mux:    asynq.NewServeMux(),
	}
}

// SetProcessors sets the functions used to process jobs
func (w *Worker) SetProcessors(
	email func(context.Context, *EmailNotificationJob) error,
	recompute func(context.Context, *RecomputeScoresJob) error,
) {
	w.emailProcessor = email
	w.recomputeProcessor = recompute
}

// Start begins processing jobs
func (w *Worker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	w.mux.HandleFunc(JobTypeEmailNotification, w.handleEmailJob)
	w.mux.HandleFunc(JobTypeRecomputeScores, w.handleRecomputeJob)

	w.running = true
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		logger.Infof("[Worker] Starting async worker...")
		if err := w.server.Run(w.mux); err != nil {
			logger.Infof("[Worker] Server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the worker
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	logger.Infof("[Worker] Shutting down...")
	w.server.Shutdown()
	w.running = false
	w.wg.Wait()
	logger.Infof("[Worker] Shutdown complete")
}

func (w *Worker) handleEmailJob(ctx context.Context, t *asynq.Task) error {
	var job EmailNotificationJob
	if err := json.Unmarshal(t.Payload(), &job); err != nil {
		logger.Infof("[Worker] Failed to unmarshal email job: %v", err)
		return err
	}

	logger.Infof("[Worker] Processing email job: user_id=%s, subject=%s", job.UserID, job.Subject)

	if w.emailProcessor == nil {
		logger.Infof("[Worker] Warning: no email processor set")
		return nil
	}

	return w.emailProcessor(ctx, &job)
}

func (w *Worker) handleRecomputeJob(ctx context.Context, t *asynq.Task) error {
	var job RecomputeScoresJob
	if err := json.Unmarshal(t.Payload(), &job); err != nil {
		logger.Infof("[Worker] Failed to unmarshal recompute job: %v", err)
		return err
	}

	if job.UserID == "" {
		logger.Infof("[Worker] Processing recompute job for all users")
	} else {
		logger.Infof("[Worker] Processing recompute job: user_id=%s", job.UserID)
	}

	if w.recomputeProcessor == nil {
		logger.Infof("[Worker] Warning: no recompute processor set")
		return nil
	}

	return w.recomputeProcessor(ctx, &job)
}

// Global worker instance
var (
	globalWorker *Worker
	workerOnce   sync.Once
)

// InitWorker initializes the global worker
func InitWorker(cfg *config.RedisConfig) *Worker {
	workerOnce.Do(func() {
		globalWorker = NewWorker(cfg)
	})
	return globalWorker
}

// GetWorker returns the global worker instance
func GetWorker() *Worker {
	return globalWorker
}
