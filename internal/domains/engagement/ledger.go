// Package engagement keeps user/target join rows (likes, attendance) and the
// target's aggregate counter in step. A row and its counter change commit together.
package engagement

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jaalakam-backend/pkg/database"
)

// ErrTargetGone is returned when the counter row disappeared mid-transaction.
var ErrTargetGone = errors.New("engagement target no longer exists")

// Relation describes one join table. CounterTable is empty when the relation keeps no counter.
type Relation struct {
	Table         string
	UserColumn    string
	TargetColumn  string
	CounterTable  string
	CounterColumn string
}

func (r Relation) HasCounter() bool {
	return r.CounterTable != "" && r.CounterColumn != ""
}

var (
	LiteratureLikes = Relation{
		Table:         "literature_likes",
		UserColumn:    "user_id",
		TargetColumn:  "literature_id",
		CounterTable:  "literatures",
		CounterColumn: "likes",
	}

	EventAttendance = Relation{
		Table:        "event_attendees",
		UserColumn:   "user_id",
		TargetColumn: "event_id",
	}
)

type Ledger struct {
	db database.DB
}

func NewLedger(db database.DB) *Ledger {
	return &Ledger{db: db}
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Add records the engagement if absent and bumps the counter by one.
// changed is false when the record already existed; nothing is written then.
func (l *Ledger) Add(ctx context.Context, rel Relation, userID, targetID uuid.UUID) (changed bool, err error) {
	return database.WithTransactionResult(ctx, l.db, func(tx pgx.Tx) (bool, error) {
		query, args, err := psql().Insert(rel.Table).
			Columns(rel.UserColumn, rel.TargetColumn).
			Values(userID, targetID).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
		if err != nil {
			return false, fmt.Errorf("building insert query: %w", err)
		}

		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return false, fmt.Errorf("inserting into %s: %w", rel.Table, err)
		}
		if tag.RowsAffected() == 0 {
			return false, nil
		}

		if rel.HasCounter() {
			if err := adjust(ctx, tx, rel, targetID, rel.CounterColumn+" + 1"); err != nil {
				return false, err
			}
		}
		return true, nil
	})
}

// Remove deletes the engagement if present and lowers the counter by one.
func (l *Ledger) Remove(ctx context.Context, rel Relation, userID, targetID uuid.UUID) (changed bool, err error) {
	return database.WithTransactionResult(ctx, l.db, func(tx pgx.Tx) (bool, error) {
		query, args, err := psql().Delete(rel.Table).
			Where(squirrel.Eq{rel.UserColumn: userID, rel.TargetColumn: targetID}).
			ToSql()
		if err != nil {
			return false, fmt.Errorf("building delete query: %w", err)
		}

		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return false, fmt.Errorf("deleting from %s: %w", rel.Table, err)
		}
		if tag.RowsAffected() == 0 {
			return false, nil
		}

		if rel.HasCounter() {
			if err := adjust(ctx, tx, rel, targetID, "GREATEST("+rel.CounterColumn+" - 1, 0)"); err != nil {
				return false, err
			}
		}
		return true, nil
	})
}

// Exists reports whether the user has engaged with the target.
func (l *Ledger) Exists(ctx context.Context, rel Relation, userID, targetID uuid.UUID) (bool, error) {
	query, args, err := psql().Select("1").
		Prefix("SELECT EXISTS (").
		From(rel.Table).
		Where(squirrel.Eq{rel.UserColumn: userID, rel.TargetColumn: targetID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building exists query: %w", err)
	}

	var exists bool
	if err := l.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking %s: %w", rel.Table, err)
	}
	return exists, nil
}

func adjust(ctx context.Context, q database.Querier, rel Relation, targetID uuid.UUID, expr string) error {
	query, args, err := psql().Update(rel.CounterTable).
		Set(rel.CounterColumn, squirrel.Expr(expr)).
		Where(squirrel.Eq{"id": targetID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building counter update: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating %s.%s: %w", rel.CounterTable, rel.CounterColumn, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTargetGone
	}
	return nil
}
