package usecase

import (
	"context"
	"fmt"

	"civicpulse/internal/domain"
	"civicpulse/internal/feed"
)

// Названия лент для метрик.
const (
	FeedIncumbents = "incumbents"
	FeedRaces      = "races"
	FeedCandidates = "candidates"
	FeedPerson     = "person"
)

// FeedsUseCase выбирает записи из хранилища и отдает их общему рендереру.
// Выборки для лент не ограничиваются по количеству.
type FeedsUseCase struct {
	directory DirectoryStorage
	elections ElectionStorage
	renderer  *feed.Renderer
	observer  Observer
}

func NewFeedsUseCase(directory DirectoryStorage, elections ElectionStorage, renderer *feed.Renderer, observer Observer) *FeedsUseCase {
	return &FeedsUseCase{
		directory: directory,
		elections: elections,
		renderer:  renderer,
		observer:  observerOrNop(observer),
	}
}

func (uc *FeedsUseCase) IncumbentsFeed(ctx context.Context, jurisdiction string) (string, error) {
	const op = "usecase.feeds.IncumbentsFeed"
	incumbents, err := uc.directory.ListIncumbents(ctx, jurisdiction)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uc.render(FeedIncumbents, feed.IncumbentsChannel(jurisdiction), feed.IncumbentEntries(incumbents)), nil
}

// RacesFeed выдает только активные кампании.
func (uc *FeedsUseCase) RacesFeed(ctx context.Context, jurisdiction, level string) (string, error) {
	const op = "usecase.feeds.RacesFeed"
	active := true
	races, err := uc.elections.ListRaces(ctx, domain.RaceFilter{
		Active:       &active,
		Jurisdiction: jurisdiction,
		Level:        level,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uc.render(FeedRaces, feed.RacesChannel(jurisdiction), feed.RaceEntries(races)), nil
}

func (uc *FeedsUseCase) CandidatesFeed(ctx context.Context, raceID int64) (string, error) {
	const op = "usecase.feeds.CandidatesFeed"
	candidates, err := uc.elections.ListCandidates(ctx, raceID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uc.render(FeedCandidates, feed.CandidatesChannel(raceID), feed.CandidateEntries(candidates)), nil
}

// PersonFeed возвращает domain.ErrNotFound, если человек не найден.
func (uc *FeedsUseCase) PersonFeed(ctx context.Context, personID int64) (string, error) {
	const op = "usecase.feeds.PersonFeed"
	person, err := uc.directory.GetPerson(ctx, personID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	positions, err := uc.directory.ListPositions(ctx, domain.PositionFilter{PersonID: personID})
	if err != nil {
		return "", fmt.Errorf("%s: positions: %w", op, err)
	}
	actions, err := uc.directory.ListActions(ctx, domain.ActionFilter{PersonID: personID})
	if err != nil {
		return "", fmt.Errorf("%s: actions: %w", op, err)
	}
	return uc.render(FeedPerson, feed.PersonChannel(person), feed.PersonEntries(person, positions, actions)), nil
}

func (uc *FeedsUseCase) render(name string, ch feed.Channel, entries []feed.Entry) string {
	uc.observer.ObserveFeed(name, len(entries))
	return uc.renderer.Render(ch, entries)
}
