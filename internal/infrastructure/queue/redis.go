package queue

import (
	"github.com/hibiken/asynq"

	"jaalakam-backend/internal/config"
)

// RedisOpt builds the asynq connection from the shared Redis settings.
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Host,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}
