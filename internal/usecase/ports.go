package usecase

import (
	"context"

	"civicpulse/internal/domain"
	"civicpulse/internal/ranking"
)

// ItemStorage определяет операции хранилища новостей.
type ItemStorage interface {
	CreateItem(ctx context.Context, item domain.NewsItem) (domain.NewsItem, error)
	CreateItems(ctx context.Context, items []domain.NewsItem) (int, error)
	ListItems(ctx context.Context, f domain.ItemFilter) ([]domain.NewsItem, error)
	ItemExists(ctx context.Context, id int64) (bool, error)
}

// CommentStorage определяет операции хранилища комментариев.
type CommentStorage interface {
	CreateComment(ctx context.Context, c domain.Comment) (domain.Comment, error)
	ListComments(ctx context.Context, itemID int64) ([]domain.Comment, error)
}

// ListingStorage определяет операции хранилища объявлений.
type ListingStorage interface {
	CreateListing(ctx context.Context, l domain.Listing) (domain.Listing, error)
	ListListings(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error)
}

// EventStorage определяет операции хранилища событий и откликов.
// GetEvent и ApproveEvent возвращают domain.ErrNotFound для отсутствующего события.
type EventStorage interface {
	CreateEvent(ctx context.Context, e domain.CommunityEvent) (domain.CommunityEvent, error)
	GetEvent(ctx context.Context, id int64) (domain.CommunityEvent, error)
	ApproveEvent(ctx context.Context, id int64) error
	ListEvents(ctx context.Context, f domain.EventFilter) ([]domain.CommunityEvent, error)
	CreateRSVP(ctx context.Context, r domain.RSVP) (domain.RSVP, error)
	ListRSVPs(ctx context.Context, eventID int64) ([]domain.RSVP, error)
}

// DirectoryStorage определяет операции справочника должностных лиц.
// Limit <= 0 в фильтрах означает выборку без ограничения.
type DirectoryStorage interface {
	CreatePerson(ctx context.Context, p domain.Person) (domain.Person, error)
	GetPerson(ctx context.Context, id int64) (domain.Person, error)
	ListPersons(ctx context.Context, f domain.PersonFilter) ([]domain.Person, error)
	CreateOffice(ctx context.Context, o domain.Office) (domain.Office, error)
	ListOffices(ctx context.Context, f domain.OfficeFilter) ([]domain.Office, error)
	CreateTerm(ctx context.Context, t domain.Term) (domain.Term, error)
	ListIncumbents(ctx context.Context, jurisdiction string) ([]domain.Incumbent, error)
	CreateAction(ctx context.Context, a domain.Action) (domain.Action, error)
	ListActions(ctx context.Context, f domain.ActionFilter) ([]domain.Action, error)
	CreatePosition(ctx context.Context, p domain.Position) (domain.Position, error)
	ListPositions(ctx context.Context, f domain.PositionFilter) ([]domain.Position, error)
}

// ElectionStorage определяет операции хранилища выборов.
type ElectionStorage interface {
	CreateRace(ctx context.Context, r domain.Race) (domain.Race, error)
	ListRaces(ctx context.Context, f domain.RaceFilter) ([]domain.Race, error)
	CreateCandidacy(ctx context.Context, c domain.Candidacy) (domain.Candidacy, error)
	ListCandidates(ctx context.Context, raceID int64) ([]domain.Candidate, error)
}

// Scorer вычисляет важность новости.
type Scorer interface {
	Score(in ranking.Input) float64
}

// Observer получает события для метрик. Реализация может быть nil.
type Observer interface {
	ObserveImportance(score float64)
	ObserveFeed(feed string, entries int)
}

type nopObserver struct{}

func (nopObserver) ObserveImportance(float64) {}

func (nopObserver) ObserveFeed(string, int) {}

func observerOrNop(o Observer) Observer {
	if o == nil {
		return nopObserver{}
	}
	return o
}

func limitOr(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}
