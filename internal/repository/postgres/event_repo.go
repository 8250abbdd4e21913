package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"festivalhub/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// eventColumns selects the event row plus the derived attendance, RSVP user
// IDs, ratings and comments. The attending count is always |rsvps|; there is
// no separately maintained counter to drift from it.
const eventColumns = `
	e.id, e.title, e.description, e.category, e.location, e.start_time, e.max_attendees, e.created_at,
	(SELECT COUNT(*) FROM rsvps r WHERE r.event_id = e.id) AS attending,
	COALESCE((SELECT array_agg(r.user_id ORDER BY r.created_at) FROM rsvps r WHERE r.event_id = e.id), '{}') AS rsvp_user_ids,
	COALESCE((SELECT array_agg(f.rating ORDER BY f.created_at) FROM event_feedback f WHERE f.event_id = e.id), '{}') AS ratings,
	COALESCE((SELECT array_agg(f.comment ORDER BY f.created_at) FROM event_feedback f WHERE f.event_id = e.id AND f.comment IS NOT NULL AND f.comment <> ''), '{}') AS comments`

func scanEvent(row interface{ Scan(dest ...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var rsvps pq.StringArray
	var ratings pq.Int64Array
	var comments pq.StringArray
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Category, &e.Location, &e.StartTime, &e.MaxAttendees, &e.CreatedAt,
		&e.Attending, &rsvps, &ratings, &comments,
	)
	if err != nil {
		return nil, err
	}
	e.RSVPs = []string(rsvps)
	e.Ratings = []int64(ratings)
	e.Comments = []string(comments)
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, title, description, category, location, start_time, max_attendees, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := q(ctx, r.DB).ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.Category, e.Location, e.StartTime, e.MaxAttendees, e.CreatedAt)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events e
		WHERE e.id = $1
	`
	e, err := scanEvent(q(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

// GetByIDForUpdate loads the base event row under a row lock, serializing
// concurrent join/cancel transitions on the same event. Derived fields are
// left zero; callers inside a transaction only need the base columns.
func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, description, category, location, start_time, max_attendees, created_at
		FROM events
		WHERE id = $1
		FOR UPDATE
	`
	e := &domain.Event{}
	err := q(ctx, r.DB).QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Category, &e.Location, &e.StartTime, &e.MaxAttendees, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events e
		ORDER BY e.start_time
	`
	rows, err := q(ctx, r.DB).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := q(ctx, r.DB).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := q(ctx, r.DB).QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

func (r *eventRepository) AddFeedback(ctx context.Context, fb *domain.Feedback) error {
	query := `
		INSERT INTO event_feedback (id, event_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	comment := sql.NullString{String: fb.Comment, Valid: fb.Comment != ""}
	_, err := q(ctx, r.DB).ExecContext(ctx, query,
		fb.ID, fb.EventID, fb.UserID, fb.Rating, comment, fb.CreatedAt)
	return err
}

func (r *eventRepository) ListAllRatings(ctx context.Context) ([]int64, error) {
	rows, err := q(ctx, r.DB).QueryContext(ctx, `SELECT rating FROM event_feedback`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]int64, 0)
	for rows.Next() {
		var rating int64
		if err := rows.Scan(&rating); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}
