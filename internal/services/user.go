package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"festivalhub/internal/domain"
)

const defaultRole = "attendee"

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type userService struct {
	userRepo       domain.UserRepository
	rsvpRepo       domain.RSVPRepository
	hasher         domain.PasswordHasher
	tokenIssuer    domain.TokenIssuer
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

// NewUserService creates a UserService with the given repositories and auth ports.
func NewUserService(
	userRepo domain.UserRepository,
	rsvpRepo domain.RSVPRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	timeout time.Duration,
) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		rsvpRepo:       rsvpRepo,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

func (s *userService) Register(ctx context.Context, params domain.RegisterParams) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email := strings.TrimSpace(strings.ToLower(params.Email))
	if strings.TrimSpace(params.Fullname) == "" || params.Password == "" {
		return "", "", fmt.Errorf("%w: fullname and password are required", domain.ErrInvalidInput)
	}
	if !emailRegexp.MatchString(email) {
		return "", "", fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	role := strings.TrimSpace(params.Role)
	if role == "" {
		role = defaultRole
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, params.Password)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Fullname:     strings.TrimSpace(params.Fullname),
		Email:        email,
		Age:          params.Age,
		Gender:       params.Gender,
		Role:         role,
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return "", "", domain.ErrDuplicateEmail
		}
		return "", "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokenIssuer.Issue(user.ID, user.Email, []string{role}, s.tokenExpiry)
	if err != nil {
		return "", "", fmt.Errorf("issue token: %w", err)
	}
	return user.ID, token, nil
}

func (s *userService) GetProfile(ctx context.Context, uid string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	titles, err := s.rsvpRepo.ListEventTitlesByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("list rsvp events: %w", err)
	}
	if titles == nil {
		titles = []string{}
	}
	user.RSVPEvents = titles
	return user, nil
}
