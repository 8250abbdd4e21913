package controllers

import (
	"context"
	"io"
	"log/slog"

	"festivalhub/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createEvent   *domain.Event
	createErr     error
	listEvents    []*domain.Event
	listErr       error
	getEvent      *domain.Event
	getHasRSVP    bool
	getErr        error
	rateRatings   []int64
	rateComments  []string
	rateErr       error
	deleteErr     error
	lastCreate    domain.CreateEventParams
	lastGetUserID string
}

func (f *fakeEventService) Create(ctx context.Context, params domain.CreateEventParams) (*domain.Event, error) {
	f.lastCreate = params
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createEvent, nil
}

func (f *fakeEventService) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listEvents, nil
}

func (f *fakeEventService) GetByID(ctx context.Context, eventID, userID string) (*domain.Event, bool, error) {
	f.lastGetUserID = userID
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.getEvent, f.getHasRSVP, nil
}

func (f *fakeEventService) Rate(ctx context.Context, eventID, userID string, rating int64, comment string) ([]int64, []string, error) {
	if f.rateErr != nil {
		return nil, nil, f.rateErr
	}
	return f.rateRatings, f.rateComments, nil
}

func (f *fakeEventService) Delete(ctx context.Context, eventID string) error {
	return f.deleteErr
}

// fakeRSVPService implements domain.RSVPService for handler tests.
type fakeRSVPService struct {
	joinEvent   *domain.Event
	joinErr     error
	cancelEvent *domain.Event
	cancelErr   error
	lastEventID string
	lastUserID  string
}

func (f *fakeRSVPService) Join(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	f.lastEventID, f.lastUserID = eventID, userID
	if f.joinErr != nil {
		return nil, f.joinErr
	}
	return f.joinEvent, nil
}

func (f *fakeRSVPService) Cancel(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	f.lastEventID, f.lastUserID = eventID, userID
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	return f.cancelEvent, nil
}

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	registerUID   string
	registerToken string
	registerErr   error
	profileUser   *domain.User
	profileErr    error
	lastParams    domain.RegisterParams
}

func (f *fakeUserService) Register(ctx context.Context, params domain.RegisterParams) (string, string, error) {
	f.lastParams = params
	if f.registerErr != nil {
		return "", "", f.registerErr
	}
	return f.registerUID, f.registerToken, nil
}

func (f *fakeUserService) GetProfile(ctx context.Context, uid string) (*domain.User, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profileUser, nil
}

// fakeStatsService implements domain.StatsService for handler tests.
type fakeStatsService struct {
	dashboard    *domain.DashboardStats
	dashboardErr error
	charts       *domain.ChartData
	chartsErr    error
	eventStats   *domain.EventStats
	eventErr     error
	eventCharts  *domain.EventChartData
	byIDErr      error
}

func (f *fakeStatsService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if f.dashboardErr != nil {
		return nil, f.dashboardErr
	}
	return f.dashboard, nil
}

func (f *fakeStatsService) EventCharts(ctx context.Context) (*domain.ChartData, error) {
	if f.chartsErr != nil {
		return nil, f.chartsErr
	}
	return f.charts, nil
}

func (f *fakeStatsService) EventStats(ctx context.Context, eventID string) (*domain.EventStats, error) {
	if f.eventErr != nil {
		return nil, f.eventErr
	}
	return f.eventStats, nil
}

func (f *fakeStatsService) EventChartsByID(ctx context.Context, eventID string) (*domain.EventChartData, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.eventCharts, nil
}

// fakeEmailService implements domain.EmailService for handler tests.
type fakeEmailService struct {
	confirmErr error
	cancelErr  error
	contactErr error
	lastRSVP   *domain.RSVPEmailData
	lastContact *domain.ContactEmailData
}

func (f *fakeEmailService) SendRSVPConfirmation(ctx context.Context, data *domain.RSVPEmailData) error {
	f.lastRSVP = data
	return f.confirmErr
}

func (f *fakeEmailService) SendRSVPCancellation(ctx context.Context, data *domain.RSVPEmailData) error {
	f.lastRSVP = data
	return f.cancelErr
}

func (f *fakeEmailService) SendContactMessage(ctx context.Context, data *domain.ContactEmailData) error {
	f.lastContact = data
	return f.contactErr
}
