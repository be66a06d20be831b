package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicpulse/internal/domain"
)

func TestMarketplaceUseCase_CreateListing(t *testing.T) {
	store := newMemStore()
	uc := NewMarketplaceUseCase(store, 100)

	l, err := uc.CreateListing(context.Background(), domain.Listing{Title: "Bike", Price: 40, IsActive: true})
	require.NoError(t, err)
	assert.NotZero(t, l.ID)

	_, err = uc.CreateListing(context.Background(), domain.Listing{Title: "Bike", Price: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateListing(context.Background(), domain.Listing{Price: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEventsUseCase_CreateEvent_Validation(t *testing.T) {
	store := newMemStore()
	uc := NewEventsUseCase(store, nil, discardLogger(), 100)
	start := time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC)

	_, err := uc.CreateEvent(context.Background(), domain.CommunityEvent{Title: "Cleanup"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	before := start.Add(-time.Hour)
	_, err = uc.CreateEvent(context.Background(), domain.CommunityEvent{Title: "Cleanup", StartsAt: start, EndsAt: &before})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	e, err := uc.CreateEvent(context.Background(), domain.CommunityEvent{Title: "Cleanup", StartsAt: start})
	require.NoError(t, err)
	assert.False(t, e.IsApproved)

	e, err = uc.CreateEvent(context.Background(), domain.CommunityEvent{Title: "Cleanup", StartsAt: start, IsApproved: true})
	require.NoError(t, err)
	assert.True(t, e.IsApproved)
}

func TestEventsUseCase_ListEvents_UpcomingUsesClock(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := NewEventsUseCase(store, fixedClock(now), discardLogger(), 100)

	_, err := uc.ListEvents(context.Background(), "Knoxville, TN", true, 0)
	require.NoError(t, err)
	require.NotNil(t, store.lastEventFilter.StartsAfter)
	assert.Equal(t, now, *store.lastEventFilter.StartsAfter)
	assert.Equal(t, 100, store.lastEventFilter.Limit)

	_, err = uc.ListEvents(context.Background(), "", false, 10)
	require.NoError(t, err)
	assert.Nil(t, store.lastEventFilter.StartsAfter)
	assert.Equal(t, 10, store.lastEventFilter.Limit)
}

func TestEventsUseCase_RSVPRequiresApprovedEvent(t *testing.T) {
	store := newMemStore()
	uc := NewEventsUseCase(store, nil, discardLogger(), 100)
	ctx := context.Background()

	e, err := uc.CreateEvent(ctx, domain.CommunityEvent{Title: "Block party", StartsAt: time.Now()})
	require.NoError(t, err)

	_, err = uc.CreateRSVP(ctx, domain.RSVP{EventID: e.ID, Name: "Sam", Count: 1})
	assert.ErrorIs(t, err, domain.ErrEventNotOpen)

	_, err = uc.CreateRSVP(ctx, domain.RSVP{EventID: 999, Name: "Sam", Count: 1})
	assert.ErrorIs(t, err, domain.ErrEventNotOpen)

	require.NoError(t, uc.ApproveEvent(ctx, e.ID))
	r, err := uc.CreateRSVP(ctx, domain.RSVP{EventID: e.ID, Name: "Sam", Count: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Count)

	rsvps, err := uc.ListRSVPs(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, rsvps, 1)
}

func TestEventsUseCase_RSVPValidation(t *testing.T) {
	store := newMemStore()
	uc := NewEventsUseCase(store, nil, discardLogger(), 100)

	_, err := uc.CreateRSVP(context.Background(), domain.RSVP{EventID: 1, Name: "Sam", Count: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateRSVP(context.Background(), domain.RSVP{EventID: 1, Name: "Sam"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateRSVP(context.Background(), domain.RSVP{EventID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEventsUseCase_ApproveMissing(t *testing.T) {
	uc := NewEventsUseCase(newMemStore(), nil, discardLogger(), 100)

	err := uc.ApproveEvent(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventsUseCase_RSVPStorageError(t *testing.T) {
	store := newMemStore()
	store.err = errStorage
	uc := NewEventsUseCase(store, nil, discardLogger(), 100)

	_, err := uc.CreateRSVP(context.Background(), domain.RSVP{EventID: 1, Name: "Sam", Count: 1})

	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, domain.ErrEventNotOpen)
}
