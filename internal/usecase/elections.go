package usecase

import (
	"context"
	"fmt"
	"strings"

	"civicpulse/internal/domain"
)

// ElectionsUseCase работает с кампаниями и кандидатурами.
type ElectionsUseCase struct {
	storage      ElectionStorage
	defaultLimit int
}

func NewElectionsUseCase(s ElectionStorage, defaultLimit int) *ElectionsUseCase {
	return &ElectionsUseCase{storage: s, defaultLimit: defaultLimit}
}

func (uc *ElectionsUseCase) CreateRace(ctx context.Context, r domain.Race) (domain.Race, error) {
	const op = "usecase.elections.CreateRace"
	switch {
	case strings.TrimSpace(r.Name) == "":
		return domain.Race{}, domain.Invalid("name", "is required")
	case strings.TrimSpace(r.Jurisdiction) == "":
		return domain.Race{}, domain.Invalid("jurisdiction", "is required")
	case strings.TrimSpace(r.Level) == "":
		return domain.Race{}, domain.Invalid("level", "is required")
	}
	r.ID = 0
	saved, err := uc.storage.CreateRace(ctx, r)
	if err != nil {
		return domain.Race{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

func (uc *ElectionsUseCase) ListRaces(ctx context.Context, f domain.RaceFilter) ([]domain.Race, error) {
	f.Limit = limitOr(f.Limit, uc.defaultLimit)
	return uc.storage.ListRaces(ctx, f)
}

func (uc *ElectionsUseCase) CreateCandidacy(ctx context.Context, c domain.Candidacy) (domain.Candidacy, error) {
	const op = "usecase.elections.CreateCandidacy"
	if c.PersonID <= 0 {
		return domain.Candidacy{}, domain.Invalid("person_id", "is required")
	}
	if c.RaceID <= 0 {
		return domain.Candidacy{}, domain.Invalid("race_id", "is required")
	}
	c.ID = 0
	saved, err := uc.storage.CreateCandidacy(ctx, c)
	if err != nil {
		return domain.Candidacy{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

// ListCandidates выдает кандидатов кампании; raceID == 0 означает все кампании.
func (uc *ElectionsUseCase) ListCandidates(ctx context.Context, raceID int64) ([]domain.Candidate, error) {
	return uc.storage.ListCandidates(ctx, raceID)
}
