package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicpulse/internal/domain"
	"civicpulse/internal/feed"
)

func newTestFeeds(store *memStore, obs Observer) *FeedsUseCase {
	now := time.Date(2025, 3, 10, 12, 30, 5, 0, time.UTC)
	return NewFeedsUseCase(store, store, feed.NewRenderer(fixedClock(now)), obs)
}

func TestFeedsUseCase_IncumbentsFeed_FiltersJurisdiction(t *testing.T) {
	store := newMemStore()
	store.incumbents = []domain.Incumbent{
		{TermID: 1, Office: domain.Office{Name: "Mayor", Jurisdiction: "City of Knoxville", Level: "city"}, Person: domain.Person{FullName: "A"}},
		{TermID: 2, Office: domain.Office{Name: "Mayor", Jurisdiction: "Knox County", Level: "county"}, Person: domain.Person{FullName: "B"}},
	}
	obs := &recordingObserver{}

	doc, err := newTestFeeds(store, obs).IncumbentsFeed(context.Background(), "City of Knoxville")

	require.NoError(t, err)
	assert.Contains(t, doc, "<title>Incumbents — City of Knoxville</title>")
	assert.Contains(t, doc, "<title>A — Mayor</title>")
	assert.NotContains(t, doc, "<title>B — Mayor</title>")
	assert.Equal(t, 1, obs.feeds[FeedIncumbents])
}

func TestFeedsUseCase_IncumbentsFeed_Empty(t *testing.T) {
	doc, err := newTestFeeds(newMemStore(), nil).IncumbentsFeed(context.Background(), "Nowhere")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(doc, "</rss>"))
	assert.NotContains(t, doc, "<item>")
}

func TestFeedsUseCase_RacesFeed_OnlyActive(t *testing.T) {
	store := newMemStore()
	store.races = []domain.Race{
		{ID: 1, Name: "Mayor", IsActive: true},
		{ID: 2, Name: "Old race", IsActive: false},
	}

	doc, err := newTestFeeds(store, nil).RacesFeed(context.Background(), "City of Knoxville", "city")

	require.NoError(t, err)
	require.NotNil(t, store.lastRaceFilter.Active)
	assert.True(t, *store.lastRaceFilter.Active)
	assert.Equal(t, "city", store.lastRaceFilter.Level)
	assert.Zero(t, store.lastRaceFilter.Limit)
	assert.Contains(t, doc, "<guid>race-1</guid>")
	assert.NotContains(t, doc, "race-2")
}

func TestFeedsUseCase_CandidatesFeed(t *testing.T) {
	store := newMemStore()
	store.candidates = []domain.Candidate{
		{Candidacy: domain.Candidacy{ID: 5, RaceID: 1}, Person: domain.Person{FullName: "C"}},
		{Candidacy: domain.Candidacy{ID: 6, RaceID: 2}, Person: domain.Person{FullName: "D"}},
	}

	doc, err := newTestFeeds(store, nil).CandidatesFeed(context.Background(), 1)

	require.NoError(t, err)
	assert.Contains(t, doc, "<title>Candidates — Race #1</title>")
	assert.Contains(t, doc, "<guid>cand-5</guid>")
	assert.NotContains(t, doc, "cand-6")
}

func TestFeedsUseCase_PersonFeed(t *testing.T) {
	store := newMemStore()
	person, err := store.CreatePerson(context.Background(), domain.Person{FullName: "Jane Doe"})
	require.NoError(t, err)
	store.positions = []domain.Position{{ID: 1, PersonID: person.ID, Topic: "Transit"}}
	store.actions = []domain.Action{{ID: 2, PersonID: person.ID, Title: "Vote"}}

	doc, err := newTestFeeds(store, nil).PersonFeed(context.Background(), person.ID)

	require.NoError(t, err)
	assert.Zero(t, store.lastPosFilter.Limit)
	pos := strings.Index(doc, "<guid>pos-1</guid>")
	act := strings.Index(doc, "<guid>act-2</guid>")
	require.NotEqual(t, -1, pos)
	require.NotEqual(t, -1, act)
	assert.Less(t, pos, act)
}

func TestFeedsUseCase_PersonFeed_NotFound(t *testing.T) {
	doc, err := newTestFeeds(newMemStore(), nil).PersonFeed(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, doc)
}
