package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/comment/model"
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

func selectComments() squirrel.SelectBuilder {
	return psql().Select(model.SelectColumns...).
		From("comments c").
		Join("users u ON u.id = c.author_id")
}

func (r *postgresRepository) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query, args, err := psql().Insert("comments").
		Columns("id", "author_id", "literature_id", "parent_comment_id", "content").
		Values(c.ID, c.AuthorID, c.LiteratureID, c.ParentCommentID, c.Content).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("inserting comment: %w", err)
	}
	return r.FindByID(ctx, c.ID)
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query, args, err := selectComments().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var c model.Comment
	if err := pgxscan.Get(ctx, r.db, &c, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("scanning comment: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) ListByLiterature(ctx context.Context, literatureID uuid.UUID, req model.ListRequest) ([]*model.Comment, error) {
	req.Normalize()

	query, args, err := selectComments().
		Where(squirrel.Eq{"c.literature_id": literatureID}).
		OrderBy("c.created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list query: %w", err)
	}

	comments := []*model.Comment{}
	if err := pgxscan.Select(ctx, r.db, &comments, query, args...); err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (r *postgresRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	query, args, err := psql().Update("comments").
		Set("content", content).
		Set("is_edited", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.ErrCommentNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql().Delete("comments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}
