package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"jaalakam-backend/internal/domains/classified/model"
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

var returning = "RETURNING " + strings.Join(model.Columns, ", ")

func (r *postgresRepository) Create(ctx context.Context, c *model.Classified) (*model.Classified, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.ContactInfo == nil {
		c.ContactInfo = map[string]string{}
	}
	if c.Images == nil {
		c.Images = []string{}
	}

	query, args, err := psql().Insert("classifieds").
		Columns("id", "posted_by_id", "title", "description", "category", "location", "contact_info", "images", "status", "expires_at").
		Values(c.ID, c.PostedByID, c.Title, c.Description, c.Category, c.Location, c.ContactInfo, pq.Array(c.Images), model.StatusActive, c.ExpiresAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	var created model.Classified
	if err := pgxscan.Get(ctx, r.db, &created, query, args...); err != nil {
		return nil, fmt.Errorf("inserting classified: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Classified, error) {
	query, args, err := psql().Select(model.Columns...).
		From("classifieds").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var c model.Classified
	if err := pgxscan.Get(ctx, r.db, &c, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, model.ErrClassifiedNotFound
		}
		return nil, fmt.Errorf("scanning classified: %w", err)
	}
	return &c, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *postgresRepository) List(ctx context.Context, req model.ListRequest) ([]*model.Classified, error) {
	req.Normalize()

	qb := psql().Select(model.Columns...).
		From("classifieds").
		Where(squirrel.Eq{"status": model.StatusActive}).
		Where("(expires_at IS NULL OR expires_at > NOW())").
		OrderBy("created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset))

	if req.Category != "" {
		qb = qb.Where(squirrel.Eq{"category": req.Category})
	}
	if loc := strings.TrimSpace(req.Location); loc != "" {
		qb = qb.Where(squirrel.ILike{"location": "%" + likeEscaper.Replace(loc) + "%"})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list query: %w", err)
	}

	items := []*model.Classified{}
	if err := pgxscan.Select(ctx, r.db, &items, query, args...); err != nil {
		return nil, fmt.Errorf("listing classifieds: %w", err)
	}
	return items, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.Classified, error) {
	qb := psql().Update("classifieds").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	if req.Title != nil {
		qb = qb.Set("title", *req.Title)
	}
	if req.Description != nil {
		qb = qb.Set("description", *req.Description)
	}
	if req.Category != nil {
		qb = qb.Set("category", *req.Category)
	}
	if req.Location != nil {
		qb = qb.Set("location", *req.Location)
	}
	if req.ContactInfo != nil {
		qb = qb.Set("contact_info", req.ContactInfo)
	}
	if req.Images != nil {
		qb = qb.Set("images", pq.Array(req.Images))
	}
	if req.Status != nil {
		qb = qb.Set("status", *req.Status)
	}
	if req.ExpiresAt != nil {
		qb = qb.Set("expires_at", *req.ExpiresAt)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	var updated model.Classified
	if err := pgxscan.Get(ctx, r.db, &updated, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, model.ErrClassifiedNotFound
		}
		return nil, fmt.Errorf("updating classified: %w", err)
	}
	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql().Delete("classifieds").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting classified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrClassifiedNotFound
	}
	return nil
}

func (r *postgresRepository) ExpireDue(ctx context.Context) (int64, error) {
	query, args, err := psql().Update("classifieds").
		Set("status", model.StatusExpired).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": model.StatusActive}).
		Where("expires_at <= NOW()").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building expire query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("expiring classifieds: %w", err)
	}
	return tag.RowsAffected(), nil
}
