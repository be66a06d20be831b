package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"civicpulse/internal/domain"
)

// MarketplaceUseCase работает с объявлениями барахолки.
type MarketplaceUseCase struct {
	storage      ListingStorage
	defaultLimit int
}

func NewMarketplaceUseCase(s ListingStorage, defaultLimit int) *MarketplaceUseCase {
	return &MarketplaceUseCase{storage: s, defaultLimit: defaultLimit}
}

func (uc *MarketplaceUseCase) CreateListing(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	const op = "usecase.marketplace.CreateListing"
	if strings.TrimSpace(l.Title) == "" {
		return domain.Listing{}, domain.Invalid("title", "is required")
	}
	if l.Price < 0 {
		return domain.Listing{}, domain.Invalid("price", "must be non-negative")
	}
	l.ID = 0
	l.CreatedAt = nil
	saved, err := uc.storage.CreateListing(ctx, l)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

func (uc *MarketplaceUseCase) ListListings(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error) {
	f.Limit = limitOr(f.Limit, uc.defaultLimit)
	return uc.storage.ListListings(ctx, f)
}

// EventsUseCase работает с событиями жителей и откликами на них.
// События создаются неодобренными и попадают в выдачу после модерации.
type EventsUseCase struct {
	storage      EventStorage
	now          func() time.Time
	log          *slog.Logger
	defaultLimit int
}

func NewEventsUseCase(s EventStorage, now func() time.Time, log *slog.Logger, defaultLimit int) *EventsUseCase {
	if now == nil {
		now = time.Now
	}
	return &EventsUseCase{storage: s, now: now, log: log, defaultLimit: defaultLimit}
}

func (uc *EventsUseCase) CreateEvent(ctx context.Context, e domain.CommunityEvent) (domain.CommunityEvent, error) {
	const op = "usecase.events.CreateEvent"
	if strings.TrimSpace(e.Title) == "" {
		return domain.CommunityEvent{}, domain.Invalid("title", "is required")
	}
	if e.StartsAt.IsZero() {
		return domain.CommunityEvent{}, domain.Invalid("starts_at", "is required")
	}
	if e.EndsAt != nil && e.EndsAt.Before(e.StartsAt) {
		return domain.CommunityEvent{}, domain.Invalid("ends_at", "must not be before starts_at")
	}
	e.ID = 0
	e.CreatedAt = nil
	saved, err := uc.storage.CreateEvent(ctx, e)
	if err != nil {
		return domain.CommunityEvent{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

// ApproveEvent помечает событие одобренным. Повторное одобрение не является ошибкой.
func (uc *EventsUseCase) ApproveEvent(ctx context.Context, id int64) error {
	const op = "usecase.events.ApproveEvent"
	if err := uc.storage.ApproveEvent(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	uc.log.Info("Event approved", slog.String("op", op), slog.Int64("id", id))
	return nil
}

// ListEvents выдает одобренные события. При upcomingOnly отбрасываются
// события, начавшиеся раньше текущего момента.
func (uc *EventsUseCase) ListEvents(ctx context.Context, city string, upcomingOnly bool, limit int) ([]domain.CommunityEvent, error) {
	f := domain.EventFilter{City: city, Limit: limitOr(limit, uc.defaultLimit)}
	if upcomingOnly {
		now := uc.now().UTC()
		f.StartsAfter = &now
	}
	return uc.storage.ListEvents(ctx, f)
}

// CreateRSVP возвращает domain.ErrEventNotOpen, если событие отсутствует
// или не одобрено.
func (uc *EventsUseCase) CreateRSVP(ctx context.Context, r domain.RSVP) (domain.RSVP, error) {
	const op = "usecase.events.CreateRSVP"
	if strings.TrimSpace(r.Name) == "" {
		return domain.RSVP{}, domain.Invalid("name", "is required")
	}
	if r.Count < 1 {
		return domain.RSVP{}, domain.Invalid("count", "must be at least 1")
	}

	event, err := uc.storage.GetEvent(ctx, r.EventID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.RSVP{}, domain.ErrEventNotOpen
	case err != nil:
		return domain.RSVP{}, fmt.Errorf("%s: %w", op, err)
	case !event.IsApproved:
		return domain.RSVP{}, domain.ErrEventNotOpen
	}

	r.ID = 0
	r.CreatedAt = nil
	saved, err := uc.storage.CreateRSVP(ctx, r)
	if err != nil {
		return domain.RSVP{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

func (uc *EventsUseCase) ListRSVPs(ctx context.Context, eventID int64) ([]domain.RSVP, error) {
	return uc.storage.ListRSVPs(ctx, eventID)
}
