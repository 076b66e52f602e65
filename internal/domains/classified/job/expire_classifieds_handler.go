package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Expirer is the repository call the sweep needs.
type Expirer interface {
	ExpireDue(ctx context.Context) (int64, error)
}

type ExpireClassifiedsHandler struct {
	repo Expirer
}

func NewExpireClassifiedsHandler(repo Expirer) *ExpireClassifiedsHandler {
	return &ExpireClassifiedsHandler{repo: repo}
}

// ProcessTask moves every ACTIVE classified past its expiry to EXPIRED.
// The task carries no payload and is safe to run repeatedly.
func (h *ExpireClassifiedsHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	expired, err := h.repo.ExpireDue(ctx)
	if err != nil {
		log.Error().Err(err).Str("task", t.Type()).Msg("Failed to expire classifieds")
		return fmt.Errorf("expire classifieds: %w", err)
	}

	if expired > 0 {
		log.Info().Int64("expired", expired).Msg("Expired classifieds")
	}
	return nil
}
