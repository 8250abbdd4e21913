package domain

import (
	"context"
	"time"
)

// User represents a registered festival attendee. ID matches the UID issued at
// registration. RSVPEvents is a derived projection of the user's active RSVPs
// (event titles, in RSVP order); it is never stored on the user row.
// swagger:model User
type User struct {
	ID         string    `json:"uid"`
	Fullname   string    `json:"fullname"`
	Email      string    `json:"email"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Role       string    `json:"role"`
	RSVPEvents []string  `json:"rsvpEvents"`
	CreatedAt  time.Time `json:"createdAt"`

	PasswordHash string `json:"-"`
	PasswordSalt string `json:"-"`
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	// ListByEventID returns the users holding an active RSVP for the event.
	ListByEventID(ctx context.Context, eventID string) ([]*User, error)
	Count(ctx context.Context) (int, error)
}

// RegisterParams carries the fields of a registration request.
type RegisterParams struct {
	Fullname string
	Email    string
	Password string
	Age      int
	Role     string
	Gender   string
}

// UserService defines registration and profile retrieval.
type UserService interface {
	// Register creates the user and returns the issued UID and auth token.
	Register(ctx context.Context, params RegisterParams) (uid, token string, err error)
	// GetProfile returns the user projection with RSVPEvents resolved
	// (empty slice when the user has no active RSVPs).
	GetProfile(ctx context.Context, uid string) (*User, error)
}
