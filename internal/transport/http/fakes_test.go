package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"civicpulse/internal/config"
	"civicpulse/internal/domain"
)

// fakeServices реализует все сервисы хендлера и запоминает аргументы вызовов.
type fakeServices struct {
	err error

	items      []domain.NewsItem
	incumbents []domain.Incumbent
	candidates []domain.Candidate
	feed       string

	createdItem    domain.NewsItem
	itemFilter     domain.ItemFilter
	comment        domain.Comment
	listingFilter  domain.ListingFilter
	eventCity      string
	eventUpcoming  bool
	rsvp           domain.RSVP
	approvedID     int64
	personFilter   domain.PersonFilter
	lookupID       int64
	officeFilter   domain.OfficeFilter
	term           domain.Term
	jurisdiction   string
	actionFilter   domain.ActionFilter
	raceFilter     domain.RaceFilter
	race           domain.Race
	raceID         int64
	feedArgs       []string
	personID       int64
	pingErr        error
	ingestCreated  int
	panicOnListing bool
}

func (f *fakeServices) CreateItem(_ context.Context, item domain.NewsItem) (domain.NewsItem, error) {
	f.createdItem = item
	item.ID = 1
	item.Importance = 4.2
	return item, f.err
}

func (f *fakeServices) ListItems(_ context.Context, filter domain.ItemFilter) ([]domain.NewsItem, error) {
	f.itemFilter = filter
	return f.items, f.err
}

func (f *fakeServices) AddComment(_ context.Context, c domain.Comment) (domain.Comment, error) {
	f.comment = c
	c.ID = 1
	return c, f.err
}

func (f *fakeServices) ListComments(context.Context, int64) ([]domain.Comment, error) {
	return nil, f.err
}

func (f *fakeServices) CreateListing(_ context.Context, l domain.Listing) (domain.Listing, error) {
	return l, f.err
}

func (f *fakeServices) ListListings(_ context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if f.panicOnListing {
		panic("boom")
	}
	f.listingFilter = filter
	return nil, f.err
}

func (f *fakeServices) CreateEvent(_ context.Context, e domain.CommunityEvent) (domain.CommunityEvent, error) {
	return e, f.err
}

func (f *fakeServices) ApproveEvent(_ context.Context, id int64) error {
	f.approvedID = id
	return f.err
}

func (f *fakeServices) ListEvents(_ context.Context, city string, upcomingOnly bool, _ int) ([]domain.CommunityEvent, error) {
	f.eventCity = city
	f.eventUpcoming = upcomingOnly
	return nil, f.err
}

func (f *fakeServices) CreateRSVP(_ context.Context, r domain.RSVP) (domain.RSVP, error) {
	f.rsvp = r
	return r, f.err
}

func (f *fakeServices) ListRSVPs(context.Context, int64) ([]domain.RSVP, error) {
	return nil, f.err
}

func (f *fakeServices) CreatePerson(_ context.Context, p domain.Person) (domain.Person, error) {
	return p, f.err
}

func (f *fakeServices) GetPerson(_ context.Context, id int64) (domain.Person, error) {
	f.lookupID = id
	if f.err != nil {
		return domain.Person{}, f.err
	}
	return domain.Person{ID: id, FullName: "Jane Doe"}, nil
}

func (f *fakeServices) ListPersons(_ context.Context, filter domain.PersonFilter) ([]domain.Person, error) {
	f.personFilter = filter
	return nil, f.err
}

func (f *fakeServices) CreateOffice(_ context.Context, o domain.Office) (domain.Office, error) {
	return o, f.err
}

func (f *fakeServices) ListOffices(_ context.Context, filter domain.OfficeFilter) ([]domain.Office, error) {
	f.officeFilter = filter
	return nil, f.err
}

func (f *fakeServices) CreateTerm(_ context.Context, t domain.Term) (domain.Term, error) {
	f.term = t
	return t, f.err
}

func (f *fakeServices) ListIncumbents(_ context.Context, jurisdiction string) ([]domain.Incumbent, error) {
	f.jurisdiction = jurisdiction
	return f.incumbents, f.err
}

func (f *fakeServices) CreateAction(_ context.Context, a domain.Action) (domain.Action, error) {
	return a, f.err
}

func (f *fakeServices) ListActions(_ context.Context, filter domain.ActionFilter) ([]domain.Action, error) {
	f.actionFilter = filter
	return nil, f.err
}

func (f *fakeServices) CreatePosition(_ context.Context, p domain.Position) (domain.Position, error) {
	return p, f.err
}

func (f *fakeServices) ListPositions(context.Context, domain.PositionFilter) ([]domain.Position, error) {
	return nil, f.err
}

func (f *fakeServices) CreateRace(_ context.Context, r domain.Race) (domain.Race, error) {
	f.race = r
	return r, f.err
}

func (f *fakeServices) ListRaces(_ context.Context, filter domain.RaceFilter) ([]domain.Race, error) {
	f.raceFilter = filter
	return nil, f.err
}

func (f *fakeServices) CreateCandidacy(_ context.Context, c domain.Candidacy) (domain.Candidacy, error) {
	return c, f.err
}

func (f *fakeServices) ListCandidates(_ context.Context, raceID int64) ([]domain.Candidate, error) {
	f.raceID = raceID
	return f.candidates, f.err
}

func (f *fakeServices) IncumbentsFeed(_ context.Context, jurisdiction string) (string, error) {
	f.feedArgs = []string{jurisdiction}
	return f.feed, f.err
}

func (f *fakeServices) RacesFeed(_ context.Context, jurisdiction, level string) (string, error) {
	f.feedArgs = []string{jurisdiction, level}
	return f.feed, f.err
}

func (f *fakeServices) CandidatesFeed(_ context.Context, raceID int64) (string, error) {
	f.raceID = raceID
	return f.feed, f.err
}

func (f *fakeServices) PersonFeed(_ context.Context, personID int64) (string, error) {
	f.personID = personID
	return f.feed, f.err
}

func (f *fakeServices) FromConfig(context.Context) (int, error) {
	return f.ingestCreated, f.err
}

func (f *fakeServices) Ping(context.Context) error {
	return f.pingErr
}

type requestRecord struct {
	method, endpoint string
	status           int
}

type recordingObserver struct {
	requests []requestRecord
}

func (o *recordingObserver) ObserveRequest(method, endpoint string, status int, _ time.Duration) {
	o.requests = append(o.requests, requestRecord{method: method, endpoint: endpoint, status: status})
}

func testDefaults() config.AppConfig {
	return config.New().App
}

func newTestServer(f *fakeServices, obs RequestObserver) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	services := Services{
		News:        f,
		Comments:    f,
		Marketplace: f,
		Events:      f,
		Directory:   f,
		Elections:   f,
		Feeds:       f,
		Ingest:      f,
		Health:      f,
	}
	h := NewHandler(log, services, testDefaults())
	return NewServer(log, h, obs, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("# metrics"))
	}))
}
