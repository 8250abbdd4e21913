package domain

import (
	"context"
	"time"
)

// RSVP is the active reservation of a user for an event. The (EventID, UserID)
// pair is the single source of truth for attendance: the user's rsvpEvents
// projection and the event's attending count are both derived from it.
type RSVP struct {
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// RSVPAudit is the append-only history record written when an RSVP is made.
// EventTitle is a denormalized snapshot of the title at RSVP time; audit rows
// are never mutated or deleted, even after cancellation.
type RSVPAudit struct {
	ID         string    `json:"id"`
	EventID    string    `json:"eventId"`
	UserID     string    `json:"userId"`
	EventTitle string    `json:"eventName"`
	CreatedAt  time.Time `json:"timestamp"`
}

// RSVPRepository defines storage operations for the active RSVP set and the audit log.
type RSVPRepository interface {
	Create(ctx context.Context, rsvp *RSVP) error
	// Delete removes the active RSVP if present. Deleting a non-existent pair is
	// not an error; cancellation is idempotent at the storage level.
	Delete(ctx context.Context, eventID, userID string) error
	Exists(ctx context.Context, eventID, userID string) (bool, error)
	ListUserIDsByEvent(ctx context.Context, eventID string) ([]string, error)
	// ListEventTitlesByUser resolves the user's active RSVPs to event titles,
	// in RSVP order. This is the rsvpEvents projection.
	ListEventTitlesByUser(ctx context.Context, userID string) ([]string, error)
	CreateAudit(ctx context.Context, audit *RSVPAudit) error
}

// Transactor runs a function inside a single serializable database transaction.
// Repository calls made with the context passed to fn join that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// RSVPService owns the join/cancel state transitions between a user and an event.
// Both transitions are guarded by the event's start time: once it has passed, the
// (user, event) pair is frozen in its current state.
type RSVPService interface {
	Join(ctx context.Context, eventID, userID string) (*Event, error)
	Cancel(ctx context.Context, eventID, userID string) (*Event, error)
}
