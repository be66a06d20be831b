package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"civicpulse/internal/domain"
	"civicpulse/internal/ingest"
)

// SourceLoader загружает список источников.
type SourceLoader interface {
	LoadFile(ctx context.Context, path string) ([]ingest.Source, error)
}

// Scraper превращает источник в нормализованные элементы.
type Scraper interface {
	Scrape(src ingest.Source) []domain.NewsItem
}

// ItemCreator сохраняет пачку новостей с вычислением важности.
type ItemCreator interface {
	CreateItems(ctx context.Context, items []domain.NewsItem) (int, error)
}

// IngestUseCase создает новости по списку источников из конфигурации.
type IngestUseCase struct {
	loader      SourceLoader
	scraper     Scraper
	items       ItemCreator
	sourcesFile string
	log         *slog.Logger
}

func NewIngestUseCase(loader SourceLoader, scraper Scraper, items ItemCreator, sourcesFile string, log *slog.Logger) *IngestUseCase {
	return &IngestUseCase{
		loader:      loader,
		scraper:     scraper,
		items:       items,
		sourcesFile: sourcesFile,
		log:         log,
	}
}

// FromConfig возвращает количество созданных элементов.
// Все элементы сохраняются одной транзакцией.
func (uc *IngestUseCase) FromConfig(ctx context.Context) (int, error) {
	const op = "usecase.ingest.FromConfig"
	log := uc.log.With(slog.String("op", op), slog.String("sources_file", uc.sourcesFile))

	sources, err := uc.loader.LoadFile(ctx, uc.sourcesFile)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	var items []domain.NewsItem
	for _, src := range sources {
		items = append(items, uc.scraper.Scrape(src)...)
	}
	if len(items) == 0 {
		log.Info("No items to ingest")
		return 0, nil
	}
	created, err := uc.items.CreateItems(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	log.Info("Ingest completed",
		slog.Int("sources", len(sources)),
		slog.Int("created", created),
	)
	return created, nil
}
