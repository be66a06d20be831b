package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"civicpulse/internal/domain"
	"civicpulse/internal/ingest"
	"civicpulse/internal/ranking"
)

var errStorage = errors.New("storage unavailable")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

// memStore хранит записи в памяти и реализует интерфейсы хранилищ.
// Фильтры повторяют только то, что нужно тестам.
type memStore struct {
	mu sync.Mutex

	items      []domain.NewsItem
	comments   []domain.Comment
	listings   []domain.Listing
	events     map[int64]*domain.CommunityEvent
	rsvps      []domain.RSVP
	persons    map[int64]domain.Person
	positions  []domain.Position
	actions    []domain.Action
	incumbents []domain.Incumbent
	races      []domain.Race
	candidates []domain.Candidate

	lastItemFilter  domain.ItemFilter
	lastEventFilter domain.EventFilter
	lastRaceFilter  domain.RaceFilter
	lastPosFilter   domain.PositionFilter
	lastActFilter   domain.ActionFilter

	nextID int64
	err    error
}

func newMemStore() *memStore {
	return &memStore{
		events:  make(map[int64]*domain.CommunityEvent),
		persons: make(map[int64]domain.Person),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateItem(_ context.Context, item domain.NewsItem) (domain.NewsItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.NewsItem{}, m.err
	}
	item.ID = m.id()
	m.items = append(m.items, item)
	return item, nil
}

func (m *memStore) CreateItems(_ context.Context, items []domain.NewsItem) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	for _, item := range items {
		item.ID = m.id()
		m.items = append(m.items, item)
	}
	return len(items), nil
}

func (m *memStore) ListItems(_ context.Context, f domain.ItemFilter) ([]domain.NewsItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastItemFilter = f
	return append([]domain.NewsItem{}, m.items...), m.err
}

func (m *memStore) ItemExists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for _, item := range m.items {
		if item.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateComment(_ context.Context, c domain.Comment) (domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.id()
	m.comments = append(m.comments, c)
	return c, nil
}

func (m *memStore) ListComments(_ context.Context, itemID int64) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Comment
	for _, c := range m.comments {
		if c.ItemID == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) CreateListing(_ context.Context, l domain.Listing) (domain.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.ID = m.id()
	m.listings = append(m.listings, l)
	return l, nil
}

func (m *memStore) ListListings(_ context.Context, _ domain.ListingFilter) ([]domain.Listing, error) {
	return m.listings, nil
}

func (m *memStore) CreateEvent(_ context.Context, e domain.CommunityEvent) (domain.CommunityEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = m.id()
	m.events[e.ID] = &e
	return e, nil
}

func (m *memStore) GetEvent(_ context.Context, id int64) (domain.CommunityEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.CommunityEvent{}, m.err
	}
	e, ok := m.events[id]
	if !ok {
		return domain.CommunityEvent{}, domain.ErrNotFound
	}
	return *e, nil
}

func (m *memStore) ApproveEvent(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.IsApproved = true
	return nil
}

func (m *memStore) ListEvents(_ context.Context, f domain.EventFilter) ([]domain.CommunityEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastEventFilter = f
	var out []domain.CommunityEvent
	for _, e := range m.events {
		if e.IsApproved {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *memStore) CreateRSVP(_ context.Context, r domain.RSVP) (domain.RSVP, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.id()
	m.rsvps = append(m.rsvps, r)
	return r, nil
}

func (m *memStore) ListRSVPs(_ context.Context, eventID int64) ([]domain.RSVP, error) {
	var out []domain.RSVP
	for _, r := range m.rsvps {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) CreatePerson(_ context.Context, p domain.Person) (domain.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.id()
	m.persons[p.ID] = p
	return p, nil
}

func (m *memStore) GetPerson(_ context.Context, id int64) (domain.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.persons[id]
	if !ok {
		return domain.Person{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *memStore) ListPersons(_ context.Context, _ domain.PersonFilter) ([]domain.Person, error) {
	return nil, nil
}

func (m *memStore) CreateOffice(_ context.Context, o domain.Office) (domain.Office, error) {
	o.ID = m.id()
	return o, nil
}

func (m *memStore) ListOffices(_ context.Context, _ domain.OfficeFilter) ([]domain.Office, error) {
	return nil, nil
}

func (m *memStore) CreateTerm(_ context.Context, t domain.Term) (domain.Term, error) {
	t.ID = m.id()
	return t, nil
}

func (m *memStore) ListIncumbents(_ context.Context, jurisdiction string) ([]domain.Incumbent, error) {
	var out []domain.Incumbent
	for _, inc := range m.incumbents {
		if jurisdiction == "" || inc.Office.Jurisdiction == jurisdiction {
			out = append(out, inc)
		}
	}
	return out, m.err
}

func (m *memStore) CreateAction(_ context.Context, a domain.Action) (domain.Action, error) {
	a.ID = m.id()
	return a, nil
}

func (m *memStore) ListActions(_ context.Context, f domain.ActionFilter) ([]domain.Action, error) {
	m.lastActFilter = f
	var out []domain.Action
	for _, a := range m.actions {
		if a.PersonID == f.PersonID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) CreatePosition(_ context.Context, p domain.Position) (domain.Position, error) {
	p.ID = m.id()
	return p, nil
}

func (m *memStore) ListPositions(_ context.Context, f domain.PositionFilter) ([]domain.Position, error) {
	m.lastPosFilter = f
	var out []domain.Position
	for _, p := range m.positions {
		if p.PersonID == f.PersonID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) CreateRace(_ context.Context, r domain.Race) (domain.Race, error) {
	r.ID = m.id()
	return r, nil
}

func (m *memStore) ListRaces(_ context.Context, f domain.RaceFilter) ([]domain.Race, error) {
	m.lastRaceFilter = f
	var out []domain.Race
	for _, r := range m.races {
		if f.Active != nil && r.IsActive != *f.Active {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memStore) CreateCandidacy(_ context.Context, c domain.Candidacy) (domain.Candidacy, error) {
	c.ID = m.id()
	return c, nil
}

func (m *memStore) ListCandidates(_ context.Context, raceID int64) ([]domain.Candidate, error) {
	var out []domain.Candidate
	for _, c := range m.candidates {
		if raceID == 0 || c.Candidacy.RaceID == raceID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fixedScorer float64

func (s fixedScorer) Score(ranking.Input) float64 { return float64(s) }

type recordingObserver struct {
	scores []float64
	feeds  map[string]int
}

func (o *recordingObserver) ObserveImportance(score float64) {
	o.scores = append(o.scores, score)
}

func (o *recordingObserver) ObserveFeed(feed string, entries int) {
	if o.feeds == nil {
		o.feeds = make(map[string]int)
	}
	o.feeds[feed] += entries
}

type stubLoader struct {
	sources []ingest.Source
	err     error
	path    string
}

func (l *stubLoader) LoadFile(_ context.Context, path string) ([]ingest.Source, error) {
	l.path = path
	return l.sources, l.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
