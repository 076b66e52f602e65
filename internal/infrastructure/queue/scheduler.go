package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/config"
)

// Scheduler enqueues periodic maintenance tasks.
type Scheduler struct {
	scheduler *asynq.Scheduler
	cfg       config.WorkerConfig
}

func NewScheduler(redis asynq.RedisConnOpt, cfg config.WorkerConfig) *Scheduler {
	return &Scheduler{
		scheduler: asynq.NewScheduler(redis, &asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.WarnLevel,
		}),
		cfg: cfg,
	}
}

// RegisterJobs registers every periodic task. Call before Start.
func (s *Scheduler) RegisterJobs() error {
	return s.register(s.cfg.ExpireClassifiedsCron, asynq.NewTask(TypeExpireClassifieds, nil),
		asynq.Queue(QueueMaintenance),
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
		// one pending sweep at a time
		asynq.Unique(time.Minute),
	)
}

func (s *Scheduler) register(cronspec string, task *asynq.Task, opts ...asynq.Option) error {
	entryID, err := s.scheduler.Register(cronspec, task, opts...)
	if err != nil {
		return fmt.Errorf("registering %s: %w", task.Type(), err)
	}

	log.Info().
		Str("task", task.Type()).
		Str("schedule", cronspec).
		Str("entry_id", entryID).
		Msg("Registered periodic task")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
