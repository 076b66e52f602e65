package main

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/config"
	"jaalakam-backend/internal/infrastructure/queue"
)

func setupScheduler(redisOpt asynq.RedisConnOpt, cfg config.WorkerConfig) *queue.Scheduler {
	scheduler := queue.NewScheduler(redisOpt, cfg)

	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatal().Err(err).Msg("[Scheduler] Failed to register")
	}

	// Start returns once the scheduler loop is running
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("[Scheduler] Failed")
	}
	log.Info().Msg("[Scheduler] Started")

	return scheduler
}
