package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicpulse/internal/domain"
)

func TestDirectoryUseCase_Validation(t *testing.T) {
	uc := NewDirectoryUseCase(newMemStore(), 200)
	ctx := context.Background()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(-1, 0, 0)

	tests := []struct {
		name string
		call func() error
	}{
		{"person without name", func() error {
			_, err := uc.CreatePerson(ctx, domain.Person{})
			return err
		}},
		{"office without level", func() error {
			_, err := uc.CreateOffice(ctx, domain.Office{Name: "Mayor", Jurisdiction: "City of Knoxville"})
			return err
		}},
		{"term without office", func() error {
			_, err := uc.CreateTerm(ctx, domain.Term{PersonID: 1})
			return err
		}},
		{"term ending before start", func() error {
			_, err := uc.CreateTerm(ctx, domain.Term{PersonID: 1, OfficeID: 1, StartDate: &start, EndDate: &end})
			return err
		}},
		{"action without title", func() error {
			_, err := uc.CreateAction(ctx, domain.Action{PersonID: 1})
			return err
		}},
		{"position without topic", func() error {
			_, err := uc.CreatePosition(ctx, domain.Position{PersonID: 1})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), domain.ErrInvalidInput)
		})
	}
}

func TestDirectoryUseCase_CreatePerson(t *testing.T) {
	store := newMemStore()
	uc := NewDirectoryUseCase(store, 200)

	p, err := uc.CreatePerson(context.Background(), domain.Person{ID: 77, FullName: "Indya Kincannon"})
	require.NoError(t, err)
	assert.NotEqual(t, int64(77), p.ID)

	got, err := uc.GetPerson(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Indya Kincannon", got.FullName)

	_, err = uc.GetPerson(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectoryUseCase_ListPositions_DefaultLimit(t *testing.T) {
	store := newMemStore()
	uc := NewDirectoryUseCase(store, 200)

	_, err := uc.ListPositions(context.Background(), domain.PositionFilter{PersonID: 3})
	require.NoError(t, err)
	assert.Equal(t, 200, store.lastPosFilter.Limit)

	_, err = uc.ListActions(context.Background(), domain.ActionFilter{Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, store.lastActFilter.Limit)
}

func TestElectionsUseCase(t *testing.T) {
	store := newMemStore()
	uc := NewElectionsUseCase(store, 200)
	ctx := context.Background()

	_, err := uc.CreateRace(ctx, domain.Race{Name: "Mayor 2027", Jurisdiction: "City of Knoxville"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	race, err := uc.CreateRace(ctx, domain.Race{Name: "Mayor 2027", Jurisdiction: "City of Knoxville", Level: "city", IsActive: true})
	require.NoError(t, err)

	_, err = uc.CreateCandidacy(ctx, domain.Candidacy{PersonID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	c, err := uc.CreateCandidacy(ctx, domain.Candidacy{PersonID: 1, RaceID: race.ID})
	require.NoError(t, err)
	assert.Equal(t, race.ID, c.RaceID)

	_, err = uc.ListRaces(ctx, domain.RaceFilter{})
	require.NoError(t, err)
	assert.Equal(t, 200, store.lastRaceFilter.Limit)
}
