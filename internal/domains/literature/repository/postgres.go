package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/domains/engagement"
	"jaalakam-backend/internal/domains/literature/model"
	"jaalakam-backend/pkg/cache"
	"jaalakam-backend/pkg/database"
)

const (
	cacheKeyPrefix = "literature:"
	genKeyPrefix   = "literature:gen:"
)

// cacheEntry pins a cached item to the generation observed before it was read.
// An entry whose generation is behind the counter is treated as a miss.
type cacheEntry struct {
	Generation int64             `json:"generation"`
	Literature *model.Literature `json:"literature"`
}

type postgresRepository struct {
	db       database.DB
	cache    cache.Cache
	cacheTTL time.Duration
	ledger   *engagement.Ledger
}

// NewPostgresRepository caches PUBLISHED items for ttl. A nil cache disables caching.
func NewPostgresRepository(db database.DB, c cache.Cache, ttl time.Duration) Repository {
	return &postgresRepository{
		db:       db,
		cache:    c,
		cacheTTL: ttl,
		ledger:   engagement.NewLedger(db),
	}
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func selectLiterature() squirrel.SelectBuilder {
	return psql().Select(model.SelectColumns...).
		From("literatures l").
		Join("authors a ON a.id = l.author_id")
}

func cacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}

func genKey(id uuid.UUID) string {
	return genKeyPrefix + id.String()
}

func (r *postgresRepository) Create(ctx context.Context, l *model.Literature) (*model.Literature, error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Tags == nil {
		l.Tags = []string{}
	}

	query, args, err := psql().Insert("literatures").
		Columns("id", "author_id", "title", "title_en", "content", "excerpt", "type", "language", "tags", "cover_image", "status").
		Values(l.ID, l.AuthorID, l.Title, l.TitleEn, l.Content, l.Excerpt, l.Type, l.Language, pq.Array(l.Tags), l.CoverImage, l.Status).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("inserting literature: %w", err)
	}
	return r.Load(ctx, l.ID)
}

// Load always reads from the database and never fills the cache.
func (r *postgresRepository) Load(ctx context.Context, id uuid.UUID) (*model.Literature, error) {
	query, args, err := selectLiterature().Where(squirrel.Eq{"l.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var l model.Literature
	if err := pgxscan.Get(ctx, r.db, &l, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, model.ErrLiteratureNotFound
		}
		return nil, fmt.Errorf("scanning literature: %w", err)
	}
	return &l, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Literature, error) {
	if r.cache == nil {
		return r.Load(ctx, id)
	}

	// the counter is read before the row so a mutation landing in between
	// leaves this fill behind the counter
	gen, ok := r.generation(ctx, id)
	if !ok {
		return r.Load(ctx, id)
	}

	var entry cacheEntry
	found, err := r.cache.Get(ctx, cacheKey(id), &entry)
	if err != nil {
		log.Warn().Err(err).Str("literature_id", id.String()).Msg("Literature cache read failed")
	} else if found && entry.Generation == gen && entry.Literature != nil {
		return entry.Literature, nil
	}

	l, err := r.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.Status == model.StatusPublished {
		if err := r.cache.Set(ctx, cacheKey(id), cacheEntry{Generation: gen, Literature: l}, r.cacheTTL); err != nil {
			log.Warn().Err(err).Str("literature_id", id.String()).Msg("Literature cache write failed")
		}
	}
	return l, nil
}

// generation returns the item's invalidation counter. ok is false when the
// counter cannot be read, in which case the cache is skipped entirely.
func (r *postgresRepository) generation(ctx context.Context, id uuid.UUID) (int64, bool) {
	var gen int64
	if _, err := r.cache.Get(ctx, genKey(id), &gen); err != nil {
		log.Warn().Err(err).Str("literature_id", id.String()).Msg("Literature cache generation read failed")
		return 0, false
	}
	return gen, true
}

// invalidate bumps the generation and drops the entry. Must run after the
// database write.
func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if r.cache == nil {
		return
	}
	// the counter outlives any entry written against its previous value
	if _, err := r.cache.Incr(ctx, genKey(id), 2*r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("literature_id", id.String()).Msg("Literature cache generation bump failed")
	}
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Str("literature_id", id.String()).Msg("Literature cache evict failed")
	}
}

func (r *postgresRepository) List(ctx context.Context, req model.ListRequest) ([]*model.Literature, error) {
	req.Normalize()

	qb := selectLiterature().
		Where(squirrel.Eq{"l.status": model.StatusPublished}).
		OrderBy("l.published_at DESC", "l.id").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset))

	if req.Type != "" {
		qb = qb.Where(squirrel.Eq{"l.type": req.Type})
	}
	if req.Language != "" {
		qb = qb.Where(squirrel.Eq{"l.language": req.Language})
	}
	if req.AuthorID != "" {
		authorID, err := uuid.Parse(req.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("parsing author id: %w", err)
		}
		qb = qb.Where(squirrel.Eq{"l.author_id": authorID})
	}
	if req.Featured != nil {
		qb = qb.Where(squirrel.Eq{"l.is_featured": *req.Featured})
	}
	if len(req.Tags) > 0 {
		qb = qb.Where(squirrel.Expr("l.tags && ?", pq.Array(req.Tags)))
	}

	return r.selectMany(ctx, qb)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *postgresRepository) Search(ctx context.Context, req model.SearchRequest) ([]*model.Literature, error) {
	req.Normalize()
	pattern := "%" + likeEscaper.Replace(req.Query) + "%"

	qb := selectLiterature().
		Where(squirrel.Eq{"l.status": model.StatusPublished}).
		Where(squirrel.Or{
			squirrel.ILike{"l.title": pattern},
			squirrel.ILike{"l.content": pattern},
			squirrel.ILike{"l.excerpt": pattern},
		}).
		OrderBy("l.published_at DESC", "l.id").
		Limit(uint64(req.Limit))

	return r.selectMany(ctx, qb)
}

func (r *postgresRepository) selectMany(ctx context.Context, qb squirrel.SelectBuilder) ([]*model.Literature, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list query: %w", err)
	}

	items := []*model.Literature{}
	if err := pgxscan.Select(ctx, r.db, &items, query, args...); err != nil {
		return nil, fmt.Errorf("listing literature: %w", err)
	}
	return items, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.Literature, error) {
	qb := psql().Update("literatures").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if req.Title != nil {
		qb = qb.Set("title", *req.Title)
	}
	if req.TitleEn != nil {
		qb = qb.Set("title_en", *req.TitleEn)
	}
	if req.Content != nil {
		qb = qb.Set("content", *req.Content)
	}
	if req.Excerpt != nil {
		qb = qb.Set("excerpt", *req.Excerpt)
	}
	if req.Tags != nil {
		qb = qb.Set("tags", pq.Array(req.Tags))
	}
	if req.CoverImage != nil {
		qb = qb.Set("cover_image", *req.CoverImage)
	}

	if err := r.exec(ctx, id, qb); err != nil {
		return nil, err
	}
	return r.Load(ctx, id)
}

func (r *postgresRepository) ApplyTransition(ctx context.Context, id uuid.UUID, from model.Status, outcome model.Outcome) (*model.Literature, error) {
	qb := psql().Update("literatures").
		Set("status", outcome.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})

	switch outcome.Stamp {
	case model.StampNow:
		qb = qb.Set("published_at", squirrel.Expr("NOW()"))
	case model.StampIfUnset:
		qb = qb.Set("published_at", squirrel.Expr("COALESCE(published_at, NOW())"))
	}

	if err := r.exec(ctx, id, qb); err != nil {
		if errors.Is(err, model.ErrLiteratureNotFound) {
			// no row matched: either it was deleted or the status guard failed
			if _, loadErr := r.Load(ctx, id); loadErr != nil {
				return nil, loadErr
			}
			return nil, model.ErrStatusChanged
		}
		return nil, err
	}
	return r.Load(ctx, id)
}

func (r *postgresRepository) exec(ctx context.Context, id uuid.UUID, qb squirrel.UpdateBuilder) error {
	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("building update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	r.invalidate(ctx, id)
	if err != nil {
		return fmt.Errorf("updating literature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrLiteratureNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql().Delete("literatures").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	r.invalidate(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting literature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrLiteratureNotFound
	}
	return nil
}

func (r *postgresRepository) Like(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	changed, err := r.ledger.Add(ctx, engagement.LiteratureLikes, userID, id)
	if changed {
		r.invalidate(ctx, id)
	}
	return changed, engagementError(err)
}

func (r *postgresRepository) Unlike(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	changed, err := r.ledger.Remove(ctx, engagement.LiteratureLikes, userID, id)
	if changed {
		r.invalidate(ctx, id)
	}
	return changed, engagementError(err)
}

func engagementError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, engagement.ErrTargetGone) || database.IsForeignKeyViolation(err) {
		return model.ErrLiteratureNotFound
	}
	return err
}
