package domain

import (
	"context"
	"time"
)

// Event represents a festival event. Attending, RSVPs, Ratings and Comments are
// derived from the rsvps and event_feedback relations; the event row itself never
// stores an attendance counter.
// swagger:model Event
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	StartTime    time.Time `json:"startTime"`
	MaxAttendees int       `json:"maxAttendees"`
	Attending    int       `json:"attending"`
	RSVPs        []string  `json:"RSVPs"`
	Ratings      []int64   `json:"Ratings"`
	Comments     []string  `json:"Comments"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Feedback is a single rating (with optional comment) left by an attendee.
type Feedback struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	Rating    int64     `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// GetByIDForUpdate loads the base event row under a row lock; used inside
	// the RSVP lifecycle transaction to serialize transitions per event.
	GetByIDForUpdate(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	AddFeedback(ctx context.Context, fb *Feedback) error
	// ListAllRatings returns every rating across all events, for the dashboard average.
	ListAllRatings(ctx context.Context) ([]int64, error)
}

// CreateEventParams carries the fields of an organizer's create-event request.
// Date and Time are combined into Event.StartTime by the service.
type CreateEventParams struct {
	Title        string
	Description  string
	Category     string
	Date         string // "2006-01-02"
	Time         string // "15:04"
	Location     string
	MaxAttendees int
}

// EventService defines the business logic owning event documents:
// creation, retrieval, deletion, and rating/comment accumulation.
type EventService interface {
	Create(ctx context.Context, params CreateEventParams) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	// GetByID returns the event and, when userID is non-empty, whether that user
	// currently holds an active RSVP for it.
	GetByID(ctx context.Context, eventID, userID string) (*Event, bool, error)
	// Rate appends a rating (and a non-empty comment) for an event the user is
	// attending. Returns the updated ratings and comments sequences.
	Rate(ctx context.Context, eventID, userID string, rating int64, comment string) ([]int64, []string, error)
	Delete(ctx context.Context, eventID string) error
}
