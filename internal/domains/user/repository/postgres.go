package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/user/model"
	"jaalakam-backend/pkg/database"
)

type postgresRepository struct {
	db database.Querier
}

// NewPostgresRepository accepts a pool or a transaction.
func NewPostgresRepository(db database.Querier) Repository {
	return &postgresRepository{db: db}
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *postgresRepository) get(ctx context.Context, where squirrel.Eq) (*model.User, error) {
	query, args, err := psql().Select(model.Columns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var user model.User
	if err := pgxscan.Get(ctx, r.db, &user, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &user, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.get(ctx, squirrel.Eq{"id": id})
}

func (r *postgresRepository) FindByClerkID(ctx context.Context, clerkID string) (*model.User, error) {
	return r.get(ctx, squirrel.Eq{"clerk_id": clerkID})
}

func (r *postgresRepository) CreateIfAbsent(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = model.RoleMember
	}

	query, args, err := psql().Insert("users").
		Columns("id", "clerk_id", "email", "name", "display_name", "avatar", "role", "is_verified").
		Values(user.ID, user.ClerkID, user.Email, user.Name, user.DisplayName, user.Avatar, user.Role, user.IsVerified).
		Suffix("ON CONFLICT (clerk_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	// The row may belong to a concurrent request that won the insert.
	return r.FindByClerkID(ctx, user.ClerkID)
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, id uuid.UUID, req model.UpdateProfileRequest) (*model.User, error) {
	qb := psql().Update("users").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(model.Columns, ", "))

	if req.Name != nil {
		qb = qb.Set("name", *req.Name)
	}
	if req.DisplayName != nil {
		qb = qb.Set("display_name", *req.DisplayName)
	}
	if req.Bio != nil {
		qb = qb.Set("bio", *req.Bio)
	}
	if req.Avatar != nil {
		qb = qb.Set("avatar", *req.Avatar)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	var user model.User
	if err := pgxscan.Get(ctx, r.db, &user, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return &user, nil
}

func (r *postgresRepository) PromoteToAuthor(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql().Update("users").
		Set("role", model.RoleAuthor).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "role": model.RoleMember}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("promoting user: %w", err)
	}
	return nil
}
