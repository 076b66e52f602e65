package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/engagement"
	"jaalakam-backend/internal/domains/event/model"
	"jaalakam-backend/pkg/database"
)

type postgresRepository struct {
	db     database.DB
	ledger *engagement.Ledger
}

func NewPostgresRepository(db database.DB) Repository {
	return &postgresRepository{
		db:     db,
		ledger: engagement.NewLedger(db),
	}
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func selectEvents() squirrel.SelectBuilder {
	return psql().Select(model.SelectColumns...).From("events e")
}

func (r *postgresRepository) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	query, args, err := psql().Insert("events").
		Columns("id", "organizer_id", "title", "title_en", "description", "description_en", "location", "start_date", "end_date", "image", "is_public").
		Values(e.ID, e.OrganizerID, e.Title, e.TitleEn, e.Description, e.DescriptionEn, e.Location, e.StartDate, e.EndDate, e.Image, e.IsPublic).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("inserting event: %w", err)
	}
	return r.FindByID(ctx, e.ID)
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query, args, err := selectEvents().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var e model.Event
	if err := pgxscan.Get(ctx, r.db, &e, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, model.ErrEventNotFound
		}
		return nil, fmt.Errorf("scanning event: %w", err)
	}
	return &e, nil
}

func (r *postgresRepository) List(ctx context.Context, req model.ListRequest) ([]*model.Event, error) {
	req.Normalize()

	qb := selectEvents().
		Where(squirrel.Eq{"e.is_public": true}).
		OrderBy("e.start_date ASC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset))
	if req.Upcoming {
		qb = qb.Where("e.start_date >= NOW()")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list query: %w", err)
	}

	events := []*model.Event{}
	if err := pgxscan.Select(ctx, r.db, &events, query, args...); err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

func (r *postgresRepository) ListAttendees(ctx context.Context, eventID uuid.UUID) ([]*model.Attendee, error) {
	query, args, err := psql().
		Select("ea.user_id", "COALESCE(u.display_name, u.name) AS name", "u.avatar", "ea.created_at AS joined_at").
		From("event_attendees ea").
		Join("users u ON u.id = ea.user_id").
		Where(squirrel.Eq{"ea.event_id": eventID}).
		OrderBy("ea.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building attendees query: %w", err)
	}

	attendees := []*model.Attendee{}
	if err := pgxscan.Select(ctx, r.db, &attendees, query, args...); err != nil {
		return nil, fmt.Errorf("listing attendees: %w", err)
	}
	return attendees, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.Event, error) {
	qb := psql().Update("events").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if req.Title != nil {
		qb = qb.Set("title", *req.Title)
	}
	if req.TitleEn != nil {
		qb = qb.Set("title_en", *req.TitleEn)
	}
	if req.Description != nil {
		qb = qb.Set("description", *req.Description)
	}
	if req.DescriptionEn != nil {
		qb = qb.Set("description_en", *req.DescriptionEn)
	}
	if req.Location != nil {
		qb = qb.Set("location", *req.Location)
	}
	if req.StartDate != nil {
		qb = qb.Set("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		qb = qb.Set("end_date", *req.EndDate)
	}
	if req.Image != nil {
		qb = qb.Set("image", *req.Image)
	}
	if req.IsPublic != nil {
		qb = qb.Set("is_public", *req.IsPublic)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.ErrEventNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql().Delete("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrEventNotFound
	}
	return nil
}

func (r *postgresRepository) Attend(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	changed, err := r.ledger.Add(ctx, engagement.EventAttendance, userID, eventID)
	return changed, attendanceError(err)
}

func (r *postgresRepository) Unattend(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	changed, err := r.ledger.Remove(ctx, engagement.EventAttendance, userID, eventID)
	return changed, attendanceError(err)
}

func attendanceError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, engagement.ErrTargetGone) || database.IsForeignKeyViolation(err) {
		return model.ErrEventNotFound
	}
	return err
}
