package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"civicpulse/internal/domain"
	"civicpulse/internal/ranking"
)

// NewsUseCase создает новости с вычисленной важностью и выдает их
// отсортированными по убыванию важности.
type NewsUseCase struct {
	storage      ItemStorage
	scorer       Scorer
	observer     Observer
	log          *slog.Logger
	defaultLimit int
}

func NewNewsUseCase(s ItemStorage, scorer Scorer, observer Observer, log *slog.Logger, defaultLimit int) *NewsUseCase {
	return &NewsUseCase{
		storage:      s,
		scorer:       scorer,
		observer:     observerOrNop(observer),
		log:          log,
		defaultLimit: defaultLimit,
	}
}

// CreateItem проверяет новость, вычисляет importance и сохраняет ее.
// Importance вычисляется один раз и при чтении не пересчитывается.
func (uc *NewsUseCase) CreateItem(ctx context.Context, item domain.NewsItem) (domain.NewsItem, error) {
	const op = "usecase.news.CreateItem"
	if err := validateItem(item); err != nil {
		return domain.NewsItem{}, err
	}
	item.ID = 0
	item.FetchedAt = nil
	item.Importance = uc.score(item)

	saved, err := uc.storage.CreateItem(ctx, item)
	if err != nil {
		return domain.NewsItem{}, fmt.Errorf("%s: %w", op, err)
	}
	uc.observer.ObserveImportance(saved.Importance)
	uc.log.Debug("Item created",
		slog.String("op", op),
		slog.Int64("id", saved.ID),
		slog.Float64("importance", saved.Importance),
	)
	return saved, nil
}

// CreateItems сохраняет пачку новостей одной транзакцией.
func (uc *NewsUseCase) CreateItems(ctx context.Context, items []domain.NewsItem) (int, error) {
	const op = "usecase.news.CreateItems"
	scored := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		if err := validateItem(item); err != nil {
			return 0, err
		}
		item.Importance = uc.score(item)
		scored = append(scored, item)
	}
	n, err := uc.storage.CreateItems(ctx, scored)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	for _, item := range scored {
		uc.observer.ObserveImportance(item.Importance)
	}
	return n, nil
}

func (uc *NewsUseCase) ListItems(ctx context.Context, f domain.ItemFilter) ([]domain.NewsItem, error) {
	f.Limit = limitOr(f.Limit, uc.defaultLimit)
	return uc.storage.ListItems(ctx, f)
}

func (uc *NewsUseCase) score(item domain.NewsItem) float64 {
	return uc.scorer.Score(ranking.Input{
		Category:    domain.StringValue(item.Category),
		Source:      domain.StringValue(item.Source),
		Title:       item.Title,
		Summary:     item.Summary,
		PublishedAt: item.PublishedAt,
		IsOfficial:  item.IsOfficial,
	})
}

func validateItem(item domain.NewsItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return domain.Invalid("title", "is required")
	}
	return nil
}
