package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaalakam-backend/internal/domains/classified/model"
	"jaalakam-backend/internal/domains/classified/repository"
	"jaalakam-backend/pkg/database/dbtest"
)

func TestPostgresRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Should list active unexpired items with filters", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery("SELECT (.+) FROM classifieds WHERE status = \\$1 AND \\(expires_at IS NULL OR expires_at > NOW\\(\\)\\) AND category = \\$2 AND location ILIKE \\$3 ORDER BY created_at DESC LIMIT 20 OFFSET 0").
			WithArgs(model.StatusActive, "housing", "%kochi%").
			WillReturnRows(mockPool.NewRows(model.Columns))

		items, err := repository.NewPostgresRepository(mockPool).List(ctx, model.ListRequest{Category: "housing", Location: " kochi "})
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestPostgresRepository_Delete(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	id := uuid.New()
	mockPool.ExpectExec("DELETE FROM classifieds WHERE id = \\$1").
		WithArgs(dbtest.UUID(id)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = repository.NewPostgresRepository(mockPool).Delete(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrClassifiedNotFound)
}

func TestPostgresRepository_ExpireDue(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectExec("UPDATE classifieds SET status = \\$1, updated_at = NOW\\(\\) WHERE status = \\$2 AND expires_at <= NOW\\(\\)").
		WithArgs(model.StatusExpired, model.StatusActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	n, err := repository.NewPostgresRepository(mockPool).ExpireDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
