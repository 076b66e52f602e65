package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/config"
)

// startServices verifies Redis before any task is consumed and exposes a liveness endpoint.
func startServices(redisOpt asynq.RedisClientOpt, cfg config.WorkerConfig) error {
	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pingRedis(ctx, inspector); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	log.Info().Msg("[Startup] Redis connection OK")

	go startHealthCheckServer(cfg.HealthPort)
	return nil
}

func pingRedis(ctx context.Context, inspector *asynq.Inspector) error {
	done := make(chan error, 1)
	go func() {
		_, err := inspector.Queues()
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func startHealthCheckServer(port string) {
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": "jaalakam-worker"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "READY"})
	})

	log.Info().Str("port", port).Msg("[Health] Starting health check server")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Error().Err(err).Msg("[Health] Failed to start")
	}
}
