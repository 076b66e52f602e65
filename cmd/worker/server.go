package main

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/config"
	"jaalakam-backend/internal/infrastructure/queue"
)

type asynqServer struct {
	*asynq.Server
}

func setupAsynqServer(redisOpt asynq.RedisConnOpt, cfg config.WorkerConfig, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Queues:      queue.Queues,
		Concurrency: cfg.Concurrency,
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
			log.Error().Err(err).Str("task", task.Type()).Msg("[Asynq] Task failed")
		}),
	})

	go func() {
		log.Info().Int("concurrency", cfg.Concurrency).Msg("[Worker] Starting")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("[Worker] Failed")
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown waits for in-flight tasks up to the server's shutdown timeout.
func (s *asynqServer) Shutdown() {
	log.Info().Msg("[Worker] Shutting down")
	s.Server.Shutdown()
	log.Info().Msg("[Worker] Stopped")
}
