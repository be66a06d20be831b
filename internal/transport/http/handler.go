package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"civicpulse/internal/config"
	"civicpulse/internal/domain"
)

type NewsService interface {
	CreateItem(ctx context.Context, item domain.NewsItem) (domain.NewsItem, error)
	ListItems(ctx context.Context, f domain.ItemFilter) ([]domain.NewsItem, error)
}

type CommentService interface {
	AddComment(ctx context.Context, c domain.Comment) (domain.Comment, error)
	ListComments(ctx context.Context, itemID int64) ([]domain.Comment, error)
}

type MarketplaceService interface {
	CreateListing(ctx context.Context, l domain.Listing) (domain.Listing, error)
	ListListings(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, e domain.CommunityEvent) (domain.CommunityEvent, error)
	ApproveEvent(ctx context.Context, id int64) error
	ListEvents(ctx context.Context, city string, upcomingOnly bool, limit int) ([]domain.CommunityEvent, error)
	CreateRSVP(ctx context.Context, r domain.RSVP) (domain.RSVP, error)
	ListRSVPs(ctx context.Context, eventID int64) ([]domain.RSVP, error)
}

type DirectoryService interface {
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

type ElectionService interface {
	CreateRace(ctx context.Context, r domain.Race) (domain.Race, error)
	ListRaces(ctx context.Context, f domain.RaceFilter) ([]domain.Race, error)
	CreateCandidacy(ctx context.Context, c domain.Candidacy) (domain.Candidacy, error)
	ListCandidates(ctx context.Context, raceID int64) ([]domain.Candidate, error)
}

type FeedService interface {
	IncumbentsFeed(ctx context.Context, jurisdiction string) (string, error)
	RacesFeed(ctx context.Context, jurisdiction, level string) (string, error)
	CandidatesFeed(ctx context.Context, raceID int64) (string, error)
	PersonFeed(ctx context.Context, personID int64) (string, error)
}

type IngestService interface {
	FromConfig(ctx context.Context) (int, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Services - зависимости хендлеров. Незаданные сервисы допустимы в тестах,
// если их маршруты не вызываются.
type Services struct {
	News        NewsService
	Comments    CommentService
	Marketplace MarketplaceService
	Events      EventService
	Directory   DirectoryService
	Elections   ElectionService
	Feeds       FeedService
	Ingest      IngestService
	Health      HealthChecker
}

type Handler struct {
	log      *slog.Logger
	services Services
	defaults config.AppConfig
}

func NewHandler(log *slog.Logger, services Services, defaults config.AppConfig) *Handler {
	return &Handler{
		log:      log.With(slog.String("component", "http")),
		services: services,
		defaults: defaults,
	}
}

// requestLogger добавляет к логгеру op и идентификатор запроса.
func (h *Handler) requestLogger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", getRequestID(r.Context())),
	)
}

// respondWithDomainError переводит доменные ошибки в HTTP-статусы.
// Детали внутренних ошибок пишутся только в лог.
func respondWithDomainError(w http.ResponseWriter, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Warn("validation failed", slog.String("field", ve.Field), slog.String("reason", ve.Reason))
		respondWithError(w, http.StatusUnprocessableEntity, ve.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		log.Warn("invalid input", slog.Any("error", err))
		respondWithError(w, http.StatusUnprocessableEntity, domain.ErrInvalidInput.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrEventNotOpen):
		respondWithError(w, http.StatusBadRequest, "Event not found or not approved")
	default:
		log.Error("request failed", slog.Any("error", err))
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithList не допускает null вместо пустого массива.
func respondWithList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) dbHealthCheck(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/dbHealthCheck"
	ctx, cancel := context.WithTimeout(r.Context(), dbPingTimeout)
	defer cancel()
	if err := h.services.Health.Ping(ctx); err != nil {
		h.requestLogger(r, op).Error("Database ping failed", slog.Any("error", err))
		respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
