package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"festivalhub/internal/domain"
)

type rsvpKey struct {
	eventID string
	userID  string
}

// fakeEventRepo is an in-memory EventRepository for tests. Derived fields
// (Attending, RSVPs, Ratings, Comments) are recomputed on every read from the
// shared fakeRSVPRepo and the stored feedback, mirroring the real queries.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	feedback  []*domain.Feedback
	rsvps     *fakeRSVPRepo
	createErr error
	getErr    error
}

func newFakeEventRepo(rsvps *fakeRSVPRepo) *fakeEventRepo {
	return &fakeEventRepo{
		byID:  make(map[string]*domain.Event),
		rsvps: rsvps,
	}
}

func (f *fakeEventRepo) add(e *domain.Event) {
	f.byID[e.ID] = e
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) project(e *domain.Event) *domain.Event {
	out := *e
	out.RSVPs = []string{}
	if f.rsvps != nil {
		out.RSVPs, _ = f.rsvps.ListUserIDsByEvent(context.Background(), e.ID)
	}
	out.Attending = len(out.RSVPs)
	out.Ratings = []int64{}
	out.Comments = []string{}
	for _, fb := range f.feedback {
		if fb.EventID != e.ID {
			continue
		}
		out.Ratings = append(out.Ratings, fb.Rating)
		if fb.Comment != "" {
			out.Comments = append(out.Comments, fb.Comment)
		}
	}
	return &out
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return f.project(e), nil
}

func (f *fakeEventRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	out := *e
	return &out, nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, f.project(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEventRepo) Count(ctx context.Context) (int, error) {
	return len(f.byID), nil
}

func (f *fakeEventRepo) AddFeedback(ctx context.Context, fb *domain.Feedback) error {
	f.feedback = append(f.feedback, fb)
	return nil
}

func (f *fakeEventRepo) ListAllRatings(ctx context.Context) ([]int64, error) {
	out := make([]int64, 0, len(f.feedback))
	for _, fb := range f.feedback {
		out = append(out, fb.Rating)
	}
	return out, nil
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	rsvps     *fakeRSVPRepo
	nextID    int
	createErr error
}

func newFakeUserRepo(rsvps *fakeRSVPRepo) *fakeUserRepo {
	return &fakeUserRepo{
		byID:   make(map[string]*domain.User),
		rsvps:  rsvps,
		nextID: 1,
	}
}

func (f *fakeUserRepo) add(u *domain.User) {
	f.byID[u.ID] = u
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	if u.ID == "" {
		u.ID = fmt.Sprintf("user-%d", f.nextID)
		f.nextID++
	}
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.User, error) {
	ids, _ := f.rsvps.ListUserIDsByEvent(ctx, eventID)
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int, error) {
	return len(f.byID), nil
}

// fakeRSVPRepo is an in-memory RSVPRepository for tests. It keeps insertion
// order so projections come back in RSVP order like the real queries.
type fakeRSVPRepo struct {
	order     []rsvpKey
	active    map[rsvpKey]time.Time
	audit     []*domain.RSVPAudit
	titles    map[string]string // eventID -> title, for ListEventTitlesByUser
	createErr error
	existsErr error
}

func newFakeRSVPRepo() *fakeRSVPRepo {
	return &fakeRSVPRepo{
		active: make(map[rsvpKey]time.Time),
		titles: make(map[string]string),
	}
}

func (f *fakeRSVPRepo) Create(ctx context.Context, rsvp *domain.RSVP) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := rsvpKey{rsvp.EventID, rsvp.UserID}
	if _, ok := f.active[key]; ok {
		return domain.ErrDuplicateRSVP
	}
	f.active[key] = rsvp.CreatedAt
	f.order = append(f.order, key)
	return nil
}

func (f *fakeRSVPRepo) Delete(ctx context.Context, eventID, userID string) error {
	key := rsvpKey{eventID, userID}
	if _, ok := f.active[key]; !ok {
		return nil
	}
	delete(f.active, key)
	for i, k := range f.order {
		if k == key {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRSVPRepo) Exists(ctx context.Context, eventID, userID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.active[rsvpKey{eventID, userID}]
	return ok, nil
}

func (f *fakeRSVPRepo) ListUserIDsByEvent(ctx context.Context, eventID string) ([]string, error) {
	out := []string{}
	for _, k := range f.order {
		if k.eventID == eventID {
			out = append(out, k.userID)
		}
	}
	return out, nil
}

func (f *fakeRSVPRepo) ListEventTitlesByUser(ctx context.Context, userID string) ([]string, error) {
	out := []string{}
	for _, k := range f.order {
		if k.userID == userID {
			out = append(out, f.titles[k.eventID])
		}
	}
	return out, nil
}

func (f *fakeRSVPRepo) CreateAudit(ctx context.Context, audit *domain.RSVPAudit) error {
	f.audit = append(f.audit, audit)
	return nil
}

// fakeTransactor runs the function directly; there is no real transaction to
// join, so the context is passed through unchanged.
type fakeTransactor struct {
	beginErr error
	calls    int
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.calls++
	return fn(ctx)
}

// fakeEmailService records sends and signals on the done channel so tests can
// wait for the background notification goroutine.
type fakeEmailService struct {
	done          chan string
	confirmations []*domain.RSVPEmailData
	cancellations []*domain.RSVPEmailData
	contacts      []*domain.ContactEmailData
	sendErr       error
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{done: make(chan string, 8)}
}

func (f *fakeEmailService) SendRSVPConfirmation(ctx context.Context, data *domain.RSVPEmailData) error {
	f.confirmations = append(f.confirmations, data)
	f.done <- "confirmation"
	return f.sendErr
}

func (f *fakeEmailService) SendRSVPCancellation(ctx context.Context, data *domain.RSVPEmailData) error {
	f.cancellations = append(f.cancellations, data)
	f.done <- "cancellation"
	return f.sendErr
}

func (f *fakeEmailService) SendContactMessage(ctx context.Context, data *domain.ContactEmailData) error {
	f.contacts = append(f.contacts, data)
	f.done <- "contact"
	return f.sendErr
}

func (f *fakeEmailService) wait(timeout time.Duration) (string, bool) {
	select {
	case kind := <-f.done:
		return kind, true
	case <-time.After(timeout):
		return "", false
	}
}

// fakeHasher returns deterministic values so tests can assert on them.
type fakeHasher struct {
	saltErr error
	hashErr error
}

func (f *fakeHasher) GenerateSalt() (string, error) {
	if f.saltErr != nil {
		return "", f.saltErr
	}
	return "salt", nil
}

func (f *fakeHasher) Hash(salt, password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + salt + ":" + password, nil
}

func (f *fakeHasher) Compare(hash, salt, password string) error {
	if hash == "hashed:"+salt+":"+password {
		return nil
	}
	return fmt.Errorf("password mismatch")
}

// fakeTokenIssuer records the last issue call.
type fakeTokenIssuer struct {
	lastUserID string
	lastEmail  string
	lastRoles  []string
	issueErr   error
}

func (f *fakeTokenIssuer) Issue(userID, email string, roles []string, expiry time.Duration) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	f.lastUserID = userID
	f.lastEmail = email
	f.lastRoles = roles
	return "token-" + userID, nil
}
