package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"festivalhub/internal/domain"
)

// startTimeLayout combines the separate date and time fields of a create
// request into one instant.
const startTimeLayout = "2006-01-02T15:04"

type eventService struct {
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	rsvpRepo       domain.RSVPRepository
	contextTimeout time.Duration
}

func NewEventService(
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	rsvpRepo domain.RSVPRepository,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		rsvpRepo:       rsvpRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, params domain.CreateEventParams) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(params.Title) == "" ||
		strings.TrimSpace(params.Description) == "" ||
		strings.TrimSpace(params.Category) == "" ||
		strings.TrimSpace(params.Date) == "" ||
		strings.TrimSpace(params.Time) == "" ||
		strings.TrimSpace(params.Location) == "" ||
		params.MaxAttendees <= 0 {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrInvalidInput)
	}

	startTime, err := time.Parse(startTimeLayout, params.Date+"T"+params.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date or time", domain.ErrInvalidInput)
	}

	event := &domain.Event{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(params.Title),
		Description:  params.Description,
		Category:     params.Category,
		Location:     params.Location,
		StartTime:    startTime,
		MaxAttendees: params.MaxAttendees,
		RSVPs:        []string{},
		Ratings:      []int64{},
		Comments:     []string{},
		CreatedAt:    time.Now(),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetByID(ctx context.Context, eventID, userID string) (*domain.Event, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, false, domain.ErrEventNotFound
		}
		return nil, false, fmt.Errorf("get event: %w", err)
	}

	userHasRSVPed := false
	if userID != "" {
		// An unknown userID is not an error here; the flag simply stays false.
		userHasRSVPed, err = s.rsvpRepo.Exists(ctx, eventID, userID)
		if err != nil {
			return nil, false, fmt.Errorf("check rsvp: %w", err)
		}
	}
	return event, userHasRSVPed, nil
}

func (s *eventService) Rate(ctx context.Context, eventID, userID string, rating int64, comment string) ([]int64, []string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, nil, domain.ErrEventNotFound
		}
		return nil, nil, fmt.Errorf("get event: %w", err)
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	attending, err := s.rsvpRepo.Exists(ctx, eventID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("check rsvp: %w", err)
	}
	if !attending {
		return nil, nil, domain.ErrNotAttending
	}

	// The rating value is stored as given; range validation is a pending
	// product decision.
	fb := &domain.Feedback{
		ID:        uuid.NewString(),
		EventID:   eventID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.eventRepo.AddFeedback(ctx, fb); err != nil {
		return nil, nil, fmt.Errorf("add feedback: %w", err)
	}

	updated, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("reload event: %w", err)
	}
	return updated.Ratings, updated.Comments, nil
}

func (s *eventService) Delete(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
