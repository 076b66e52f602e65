package engagement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaalakam-backend/internal/domains/engagement"
	"jaalakam-backend/pkg/database/dbtest"
)

const (
	insertLike    = "INSERT INTO literature_likes \\(user_id,literature_id\\) VALUES \\(\\$1,\\$2\\) ON CONFLICT DO NOTHING"
	incrementLike = "UPDATE literatures SET likes = likes \\+ 1 WHERE id = \\$1"
	deleteLike    = "DELETE FROM literature_likes WHERE literature_id = \\$1 AND user_id = \\$2"
	decrementLike = "UPDATE literatures SET likes = GREATEST\\(likes - 1, 0\\) WHERE id = \\$1"
)

func newLedger(t *testing.T) (*engagement.Ledger, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return engagement.NewLedger(mockPool), mockPool
}

func TestLedger_Add(t *testing.T) {
	ctx := context.Background()
	userID, targetID := uuid.New(), uuid.New()

	t.Run("Should insert the record and increment the counter in one transaction", func(t *testing.T) {
		ledger, mockPool := newLedger(t)
		mockPool.ExpectBegin()
		mockPool.ExpectExec(insertLike).WithArgs(dbtest.UUID(userID), dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockPool.ExpectExec(incrementLike).WithArgs(dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mockPool.ExpectCommit()

		changed, err := ledger.Add(ctx, engagement.LiteratureLikes, userID, targetID)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should leave the counter alone when the record exists", func(t *testing.T) {
		ledger, mockPool := newLedger(t)
		mockPool.ExpectBegin()
		mockPool.ExpectExec(insertLike).WithArgs(dbtest.UUID(userID), dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mockPool.ExpectCommit()

		changed, err := ledger.Add(ctx, engagement.LiteratureLikes, userID, targetID)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should roll back the insert when the counter update fails", func(t *testing.T) {
		ledger, mockPool := newLedger(t)
		mockPool.ExpectBegin()
		mockPool.ExpectExec(insertLike).WithArgs(dbtest.UUID(userID), dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockPool.ExpectExec(incrementLike).WithArgs(dbtest.UUID(targetID)).WillReturnError(errors.New("serialization failure"))
		mockPool.ExpectRollback()

		changed, err := ledger.Add(ctx, engagement.LiteratureLikes, userID, targetID)
		assert.Error(t, err)
		assert.False(t, changed)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should roll back when the target vanished", func(t *testing.T) {
		ledger, mockPool := newLedger(t)
		mockPool.ExpectBegin()
		mockPool.ExpectExec(insertLike).WithArgs(dbtest.UUID(userID), dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockPool.ExpectExec(incrementLike).WithArgs(dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mockPool.ExpectRollback()

		_, err := ledger.Add(ctx, engagement.LiteratureLikes, userID, targetID)
		assert.ErrorIs(t, err, engagement.ErrTargetGone)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should not touch a counter for relations without one", func(t *testing.T) {
		ledger, mockPool := newLedger(t)
		mockPool.ExpectBegin()
		mockPool.ExpectExec("INSERT INTO event_attendees \\(user_id,event_id\\) VALUES \\(\\$1,\\$2\\) ON CONFLICT DO NOTHING").
			WithArgs(dbtest.UUID(userID), dbtest.UUID(targetID)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockPool.ExpectCommit()

		changed, err := ledger.Add(ctx, engagement.EventAttendance, userID, targetID)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should roll back when the request is cancelled mid-transaction", func(t *testing.T) {
		ledger, mockPool := newLedger(t)
		mockPool.ExpectBegin()
		mockPool.ExpectExec(insertLike).WithArgs(dbtest.UUID(userID), dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockPool.ExpectExec(incrementLike).WithArgs(dbtest.UUID(targetID)).WillReturnError(context.Canceled)
		mockPool.ExpectRollback()

		_, err := ledger.Add(ctx, engagement.LiteratureLikes, userID, targetID)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestLedger_Remove(t *testing.T) {
	ctx := context.Background()
	userID, targetID := uuid.New(), uuid.New()

	t.Run("Should delete the record and decrement the counter", func(t *testing.T) {
		ledger, mockPool := newLedger(t)
		mockPool.ExpectBegin()
		mockPool.ExpectExec(deleteLike).WithArgs(dbtest.UUID(targetID), dbtest.UUID(userID)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mockPool.ExpectExec(decrementLike).WithArgs(dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mockPool.ExpectCommit()

		changed, err := ledger.Remove(ctx, engagement.LiteratureLikes, userID, targetID)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should be a no-op when there is nothing to remove", func(t *testing.T) {
		ledger, mockPool := newLedger(t)
		mockPool.ExpectBegin()
		mockPool.ExpectExec(deleteLike).WithArgs(dbtest.UUID(targetID), dbtest.UUID(userID)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mockPool.ExpectCommit()

		changed, err := ledger.Remove(ctx, engagement.LiteratureLikes, userID, targetID)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestLedger_LikeSequenceKeepsCounterInStep(t *testing.T) {
	// like, like, unlike, unlike: only the first like and the first unlike write the counter
	ctx := context.Background()
	userID, targetID := uuid.New(), uuid.New()
	ledger, mockPool := newLedger(t)

	mockPool.ExpectBegin()
	mockPool.ExpectExec(insertLike).WithArgs(dbtest.UUID(userID), dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mockPool.ExpectExec(incrementLike).WithArgs(dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockPool.ExpectCommit()
	mockPool.ExpectBegin()
	mockPool.ExpectExec(insertLike).WithArgs(dbtest.UUID(userID), dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mockPool.ExpectCommit()
	mockPool.ExpectBegin()
	mockPool.ExpectExec(deleteLike).WithArgs(dbtest.UUID(targetID), dbtest.UUID(userID)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mockPool.ExpectExec(decrementLike).WithArgs(dbtest.UUID(targetID)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockPool.ExpectCommit()
	mockPool.ExpectBegin()
	mockPool.ExpectExec(deleteLike).WithArgs(dbtest.UUID(targetID), dbtest.UUID(userID)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mockPool.ExpectCommit()

	likes := 0
	steps := []struct {
		run   func() (bool, error)
		delta int
		want  int
	}{
		{func() (bool, error) { return ledger.Add(ctx, engagement.LiteratureLikes, userID, targetID) }, 1, 1},
		{func() (bool, error) { return ledger.Add(ctx, engagement.LiteratureLikes, userID, targetID) }, 1, 1},
		{func() (bool, error) { return ledger.Remove(ctx, engagement.LiteratureLikes, userID, targetID) }, -1, 0},
		{func() (bool, error) { return ledger.Remove(ctx, engagement.LiteratureLikes, userID, targetID) }, -1, 0},
	}
	for i, step := range steps {
		changed, err := step.run()
		require.NoError(t, err)
		if changed {
			likes += step.delta
		}
		assert.Equal(t, step.want, likes, "step %d", i)
	}

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestLedger_Exists(t *testing.T) {
	ledger, mockPool := newLedger(t)
	userID, eventID := uuid.New(), uuid.New()

	mockPool.ExpectQuery("SELECT EXISTS \\( SELECT 1 FROM event_attendees WHERE event_id = \\$1 AND user_id = \\$2 \\)").
		WithArgs(dbtest.UUID(eventID), dbtest.UUID(userID)).
		WillReturnRows(mockPool.NewRows([]string{"exists"}).AddRow(true))

	ok, err := ledger.Exists(context.Background(), engagement.EventAttendance, userID, eventID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
