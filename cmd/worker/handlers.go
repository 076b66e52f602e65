package main

import (
	"github.com/hibiken/asynq"

	classifiedJob "jaalakam-backend/internal/domains/classified/job"
	classifiedRepo "jaalakam-backend/internal/domains/classified/repository"
	"jaalakam-backend/internal/infrastructure/database"
	"jaalakam-backend/internal/infrastructure/queue"
)

// HandlerRegistry holds all task handlers.
type HandlerRegistry struct {
	expireClassifieds *classifiedJob.ExpireClassifiedsHandler
}

func initializeHandlers(db *database.PostgresDB) *HandlerRegistry {
	return &HandlerRegistry{
		expireClassifieds: classifiedJob.NewExpireClassifiedsHandler(classifiedRepo.NewPostgresRepository(db.Pool)),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TypeExpireClassifieds, h.expireClassifieds.ProcessTask)
}
