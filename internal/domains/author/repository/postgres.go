package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jaalakam-backend/internal/domains/author/model"
	userrepo "jaalakam-backend/internal/domains/user/repository"
	"jaalakam-backend/pkg/database"
)

type postgresRepository struct {
	db database.DB
}

func NewPostgresRepository(db database.DB) Repository {
	return &postgresRepository{db: db}
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func get(ctx context.Context, q database.Querier, where squirrel.Eq, notFound error) (*model.Author, error) {
	query, args, err := psql().Select(model.Columns...).
		From("authors").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var a model.Author
	if err := pgxscan.Get(ctx, q, &a, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, notFound
		}
		return nil, fmt.Errorf("scanning author: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	return get(ctx, r.db, squirrel.Eq{"id": id}, model.ErrAuthorNotFound)
}

func (r *postgresRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Author, error) {
	return get(ctx, r.db, squirrel.Eq{"user_id": userID}, model.ErrProfileNotFound)
}

func (r *postgresRepository) List(ctx context.Context, req model.ListRequest) ([]*model.Author, error) {
	req.Normalize()

	qb := psql().Select(model.Columns...).
		From("authors").
		OrderBy("created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset))
	if req.Verified != nil {
		qb = qb.Where(squirrel.Eq{"is_verified": *req.Verified})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list query: %w", err)
	}

	authors := []*model.Author{}
	if err := pgxscan.Select(ctx, r.db, &authors, query, args...); err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}
	return authors, nil
}

func (r *postgresRepository) ListPublishedWorks(ctx context.Context, authorID uuid.UUID) ([]*model.Work, error) {
	query, args, err := psql().
		Select("id", "title", "title_en", "type", "language", "likes", "published_at").
		From("literatures").
		Where(squirrel.Eq{"author_id": authorID, "status": "PUBLISHED"}).
		OrderBy("published_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building works query: %w", err)
	}

	works := []*model.Work{}
	if err := pgxscan.Select(ctx, r.db, &works, query, args...); err != nil {
		return nil, fmt.Errorf("listing works: %w", err)
	}
	return works, nil
}

func (r *postgresRepository) CreateWithPromotion(ctx context.Context, a *model.Author) (*model.Author, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.SocialLinks == nil {
		a.SocialLinks = map[string]string{}
	}

	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*model.Author, error) {
		query, args, err := psql().Insert("authors").
			Columns("id", "user_id", "pen_name", "bio", "bio_en", "avatar", "social_links").
			Values(a.ID, a.UserID, a.PenName, a.Bio, a.BioEn, a.Avatar, a.SocialLinks).
			Suffix("RETURNING " + strings.Join(model.Columns, ", ")).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("building insert query: %w", err)
		}

		var created model.Author
		if err := pgxscan.Get(ctx, tx, &created, query, args...); err != nil {
			if database.IsUniqueViolation(err) {
				return nil, model.ErrAuthorAlreadyExists
			}
			return nil, fmt.Errorf("inserting author: %w", err)
		}

		if err := userrepo.NewPostgresRepository(tx).PromoteToAuthor(ctx, a.UserID); err != nil {
			return nil, err
		}
		return &created, nil
	})
}

func (r *postgresRepository) EnsureForUser(ctx context.Context, userID uuid.UUID) (*model.Author, error) {
	query, args, err := psql().Insert("authors").
		Columns("id", "user_id").
		Values(uuid.New(), userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("ensuring author profile: %w", err)
	}
	return r.FindByUserID(ctx, userID)
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req model.ProfileRequest) (*model.Author, error) {
	qb := psql().Update("authors").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(model.Columns, ", "))

	if req.PenName != nil {
		qb = qb.Set("pen_name", *req.PenName)
	}
	if req.Bio != nil {
		qb = qb.Set("bio", *req.Bio)
	}
	if req.BioEn != nil {
		qb = qb.Set("bio_en", *req.BioEn)
	}
	if req.Avatar != nil {
		qb = qb.Set("avatar", *req.Avatar)
	}
	if req.SocialLinks != nil {
		qb = qb.Set("social_links", req.SocialLinks)
	}

	return r.returning(ctx, qb)
}

func (r *postgresRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*model.Author, error) {
	return r.returning(ctx, psql().Update("authors").
		Set("is_verified", verified).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING "+strings.Join(model.Columns, ", ")))
}

func (r *postgresRepository) returning(ctx context.Context, qb squirrel.UpdateBuilder) (*model.Author, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	var a model.Author
	if err := pgxscan.Get(ctx, r.db, &a, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("updating author: %w", err)
	}
	return &a, nil
}
