package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"festivalhub/internal/domain"
)

type rsvpService struct {
	transactor     domain.Transactor
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	rsvpRepo       domain.RSVPRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
	notifyTimeout  time.Duration
	now            func() time.Time
}

// NewRSVPService creates the RSVP lifecycle service. Every join/cancel runs its
// read-check-write sequence inside the transactor so concurrent transitions on
// the same (user, event) pair cannot interleave.
func NewRSVPService(
	transactor domain.Transactor,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	rsvpRepo domain.RSVPRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RSVPService {
	return &rsvpService{
		transactor:     transactor,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		rsvpRepo:       rsvpRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
		notifyTimeout:  10 * time.Second,
		now:            time.Now,
	}
}

func (s *rsvpService) Join(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var event *domain.Event
	var user *domain.User
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			if errors.Is(err, domain.ErrEventNotFound) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("get event: %w", err)
		}
		user, err = s.userRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("get user: %w", err)
		}

		// Strict less-than: an event starting exactly now is already closed.
		if !s.now().Before(event.StartTime) {
			return domain.ErrEventAlreadyOccurred
		}

		exists, err := s.rsvpRepo.Exists(ctx, eventID, userID)
		if err != nil {
			return fmt.Errorf("check existing rsvp: %w", err)
		}
		if exists {
			return domain.ErrDuplicateRSVP
		}

		now := s.now()
		if err := s.rsvpRepo.Create(ctx, &domain.RSVP{EventID: eventID, UserID: userID, CreatedAt: now}); err != nil {
			if errors.Is(err, domain.ErrDuplicateRSVP) {
				return domain.ErrDuplicateRSVP
			}
			return fmt.Errorf("create rsvp: %w", err)
		}
		audit := &domain.RSVPAudit{
			ID:         uuid.NewString(),
			EventID:    eventID,
			UserID:     userID,
			EventTitle: event.Title,
			CreatedAt:  now,
		}
		if err := s.rsvpRepo.CreateAudit(ctx, audit); err != nil {
			return fmt.Errorf("create rsvp audit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify("confirmation", user, event, s.emailService.SendRSVPConfirmation)
	return event, nil
}

func (s *rsvpService) Cancel(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var event *domain.Event
	var user *domain.User
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			if errors.Is(err, domain.ErrEventNotFound) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("get event: %w", err)
		}
		user, err = s.userRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("get user: %w", err)
		}

		if !s.now().Before(event.StartTime) {
			return domain.ErrEventAlreadyStarted
		}

		// Removing a pair that is not present is a no-op; cancellation is
		// idempotent and the derived attendance count can never go negative.
		if err := s.rsvpRepo.Delete(ctx, eventID, userID); err != nil {
			return fmt.Errorf("delete rsvp: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify("cancellation", user, event, s.emailService.SendRSVPCancellation)
	return event, nil
}

// notify dispatches an RSVP email in the background after the transaction has
// committed. Delivery is best-effort: a failure is logged with full detail and
// never converts the already-successful state change into an error.
func (s *rsvpService) notify(kind string, user *domain.User, event *domain.Event, send func(context.Context, *domain.RSVPEmailData) error) {
	data := &domain.RSVPEmailData{
		Email:         user.Email,
		Fullname:      user.Fullname,
		EventTitle:    event.Title,
		EventLocation: event.Location,
		EventStart:    event.StartTime,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		if err := send(ctx, data); err != nil {
			s.logger.Error("rsvp notification failed",
				"kind", kind,
				"event_id", event.ID,
				"user_id", user.ID,
				"err", err,
			)
		}
	}()
}
