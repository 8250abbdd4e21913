package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"festivalhub/internal/domain"
)

type statsService struct {
	userRepo       domain.UserRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewStatsService creates the statistics aggregation service. All reads are
// plain snapshots; no locking is involved.
func NewStatsService(userRepo domain.UserRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.StatsService {
	return &statsService{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *statsService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	totalAttendees, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	activeEvents, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	ratings, err := s.eventRepo.ListAllRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	return &domain.DashboardStats{
		TotalAttendees: totalAttendees,
		ActiveEvents:   activeEvents,
		AverageRating:  formatAverageRating(ratings),
	}, nil
}

func (s *statsService) EventCharts(ctx context.Context) (*domain.ChartData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	ageDist := newAgeDistribution()
	genderDist := newGenderDistribution()
	for _, u := range users {
		bucketAge(ageDist, u.Age)
		bucketGender(genderDist, u.Gender)
	}

	attendance := make(map[string]int, len(events))
	for _, e := range events {
		attendance[e.Title] = e.Attending
	}

	return &domain.ChartData{
		AgeDistribution:     ageDist,
		AttendanceBySession: attendance,
		GenderDistribution:  genderDist,
	}, nil
}

func (s *statsService) EventStats(ctx context.Context, eventID string) (*domain.EventStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	return &domain.EventStats{
		EventID:        event.ID,
		TotalAttendees: event.Attending,
		AverageRating:  formatAverageRating(event.Ratings),
	}, nil
}

func (s *statsService) EventChartsByID(ctx context.Context, eventID string) (*domain.EventChartData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	attendees, err := s.userRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	ageDist := newAgeDistribution()
	genderDist := newGenderDistribution()
	for _, u := range attendees {
		bucketAge(ageDist, u.Age)
		bucketGender(genderDist, u.Gender)
	}

	return &domain.EventChartData{
		EventID:            eventID,
		AgeDistribution:    ageDist,
		GenderDistribution: genderDist,
	}, nil
}

// formatAverageRating returns the mean formatted to one decimal place, or the
// sentinel value when no ratings exist (never "0.0" or NaN).
func formatAverageRating(ratings []int64) string {
	if len(ratings) == 0 {
		return domain.NoRatingsSentinel
	}
	var sum int64
	for _, r := range ratings {
		sum += r
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(ratings)))
}

func newAgeDistribution() map[string]int {
	dist := make(map[string]int, len(domain.AgeBands))
	for _, band := range domain.AgeBands {
		dist[band] = 0
	}
	return dist
}

func newGenderDistribution() map[string]int {
	return map[string]int{"Male": 0, "Female": 0, "Other": 0}
}

// bucketAge counts an age into its band. Unknown ages (zero or negative) are
// skipped entirely; any other age outside the named bands, including under 18,
// lands in "55+". Both behaviors match the dashboards this feeds.
func bucketAge(dist map[string]int, age int) {
	if age <= 0 {
		return
	}
	switch {
	case age >= 18 && age <= 24:
		dist["18-24"]++
	case age >= 25 && age <= 34:
		dist["25-34"]++
	case age >= 35 && age <= 44:
		dist["35-44"]++
	case age >= 45 && age <= 54:
		dist["45-54"]++
	default:
		dist["55+"]++
	}
}

// bucketGender matches "male"/"female" case-insensitively; anything else,
// including an empty value, counts as Other.
func bucketGender(dist map[string]int, gender string) {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male":
		dist["Male"]++
	case "female":
		dist["Female"]++
	default:
		dist["Other"]++
	}
}
