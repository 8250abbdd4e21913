package domain

import "errors"

// Sentinel errors shared across services. Controllers map these to HTTP status codes.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")

	// ErrEventAlreadyOccurred is returned when joining an event whose start time has passed.
	ErrEventAlreadyOccurred = errors.New("event has already occurred")
	// ErrEventAlreadyStarted is returned when cancelling after the event start time.
	ErrEventAlreadyStarted = errors.New("event has already started")

	// ErrDuplicateRSVP is returned when the user already holds an active RSVP for the event.
	ErrDuplicateRSVP = errors.New("already RSVP'd for this event")
	// ErrNotAttending is returned when rating an event without an active RSVP.
	ErrNotAttending = errors.New("must RSVP to rate and comment on this event")

	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateEmail = errors.New("email already in use")
)
