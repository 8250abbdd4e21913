package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"festivalhub/internal/domain"
)

type rsvpRepository struct {
	DB *sql.DB
}

func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{
		DB: db,
	}
}

func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		INSERT INTO rsvps (event_id, user_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := q(ctx, r.DB).ExecContext(ctx, query, rsvp.EventID, rsvp.UserID, rsvp.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.ErrDuplicateRSVP
		}
		return err
	}
	return nil
}

func (r *rsvpRepository) Delete(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM rsvps WHERE event_id = $1 AND user_id = $2`
	_, err := q(ctx, r.DB).ExecContext(ctx, query, eventID, userID)
	return err
}

func (r *rsvpRepository) Exists(ctx context.Context, eventID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rsvps WHERE event_id = $1 AND user_id = $2)`
	var exists bool
	err := q(ctx, r.DB).QueryRowContext(ctx, query, eventID, userID).Scan(&exists)
	return exists, err
}

func (r *rsvpRepository) ListUserIDsByEvent(ctx context.Context, eventID string) ([]string, error) {
	query := `
		SELECT user_id
		FROM rsvps
		WHERE event_id = $1
		ORDER BY created_at
	`
	rows, err := q(ctx, r.DB).QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	userIDs := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, id)
	}
	return userIDs, rows.Err()
}

func (r *rsvpRepository) ListEventTitlesByUser(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT e.title
		FROM rsvps r
		JOIN events e ON e.id = r.event_id
		WHERE r.user_id = $1
		ORDER BY r.created_at
	`
	rows, err := q(ctx, r.DB).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make([]string, 0)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

func (r *rsvpRepository) CreateAudit(ctx context.Context, audit *domain.RSVPAudit) error {
	query := `
		INSERT INTO rsvp_audit (id, event_id, user_id, event_title, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := q(ctx, r.DB).ExecContext(ctx, query,
		audit.ID, audit.EventID, audit.UserID, audit.EventTitle, audit.CreatedAt)
	return err
}
