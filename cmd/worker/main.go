package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/config"
	"jaalakam-backend/internal/infrastructure/database"
	"jaalakam-backend/internal/infrastructure/queue"
	"jaalakam-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[Worker] Failed to load config")
	}

	db, err := connectDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("[Worker] Failed to connect to database")
	}
	defer db.Close()

	redisOpt := queue.RedisOpt(cfg.Redis)

	if err := startServices(redisOpt, cfg.Worker); err != nil {
		log.Fatal().Err(err).Msg("[Startup] Health check failed")
	}

	handlers := initializeHandlers(db)
	srv := setupAsynqServer(redisOpt, cfg.Worker, handlers)
	scheduler := setupScheduler(redisOpt, cfg.Worker)

	waitForShutdown(srv, scheduler)
}

func connectDatabase() (*database.PostgresDB, error) {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

func waitForShutdown(srv *asynqServer, scheduler *queue.Scheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("[Shutdown] Gracefully stopping")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Info().Msg("[Shutdown] Stopped")
}
