package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/report/model"
	"jaalakam-backend/pkg/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) Repository {
	return &postgresRepository{db: db}
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *postgresRepository) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}

	query, args, err := psql().Insert("reports").
		Columns("id", "type", "target_type", "target_id", "reason", "reported_by_id", "status").
		Values(report.ID, report.Type, report.TargetType, report.TargetID, report.Reason, report.ReportedByID, model.StatusPending).
		Suffix("RETURNING " + strings.Join(model.Columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	var created model.Report
	if err := pgxscan.Get(ctx, r.db, &created, query, args...); err != nil {
		return nil, fmt.Errorf("inserting report: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	query, args, err := psql().Select(model.Columns...).
		From("reports").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var report model.Report
	if err := pgxscan.Get(ctx, r.db, &report, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, model.ErrReportNotFound
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}
	return &report, nil
}

func (r *postgresRepository) List(ctx context.Context, req model.ListRequest) ([]*model.Report, error) {
	req.Normalize()

	qb := psql().Select(model.Columns...).
		From("reports").
		OrderBy("created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset))
	if req.Status != "" {
		qb = qb.Where(squirrel.Eq{"status": req.Status})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list query: %w", err)
	}

	reports := []*model.Report{}
	if err := pgxscan.Select(ctx, r.db, &reports, query, args...); err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	return reports, nil
}

func (r *postgresRepository) ResolveForTarget(ctx context.Context, targetType model.TargetType, targetID, resolvedBy uuid.UUID, status model.Status) (int64, error) {
	if !status.IsClosed() {
		return 0, model.ErrInvalidResolution
	}

	query, args, err := psql().Update("reports").
		Set("status", status).
		Set("resolved_by_id", resolvedBy).
		Set("resolved_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"target_type": targetType,
			"target_id":   targetID,
			"status":      model.StatusPending,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building resolve query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("resolving reports: %w", err)
	}
	return tag.RowsAffected(), nil
}
