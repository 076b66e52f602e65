package job_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jaalakam-backend/internal/domains/classified/job"
	"jaalakam-backend/internal/infrastructure/queue"
)

type mockExpirer struct {
	mock.Mock
}

func (m *mockExpirer) ExpireDue(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestExpireClassifiedsHandler_ProcessTask(t *testing.T) {
	ctx := context.Background()
	task := asynq.NewTask(queue.TypeExpireClassifieds, nil)

	t.Run("Should sweep expired classifieds", func(t *testing.T) {
		repo := &mockExpirer{}
		repo.On("ExpireDue", ctx).Return(int64(4), nil)

		require.NoError(t, job.NewExpireClassifiedsHandler(repo).ProcessTask(ctx, task))
		repo.AssertExpectations(t)
	})

	t.Run("Should succeed when nothing is due", func(t *testing.T) {
		repo := &mockExpirer{}
		repo.On("ExpireDue", ctx).Return(int64(0), nil)

		assert.NoError(t, job.NewExpireClassifiedsHandler(repo).ProcessTask(ctx, task))
	})

	t.Run("Should return the error so asynq retries", func(t *testing.T) {
		repo := &mockExpirer{}
		dbErr := errors.New("connection reset")
		repo.On("ExpireDue", ctx).Return(int64(0), dbErr)

		err := job.NewExpireClassifiedsHandler(repo).ProcessTask(ctx, task)
		assert.ErrorIs(t, err, dbErr)
	})
}
