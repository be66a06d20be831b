package ingest

import (
	"time"

	"civicpulse/internal/domain"
)

// PlaceholderSummary - текст-заглушка для элементов, созданных без реального сбора.
const PlaceholderSummary = "This is a placeholder item. Replace with parsed summary."

// Placeholder - заглушка сборщика: по одному элементу на источник, без сетевых
// запросов. Показывает нормализованную форму элемента для будущих сборщиков.
type Placeholder struct {
	now func() time.Time
}

func NewPlaceholder(now func() time.Time) *Placeholder {
	if now == nil {
		now = time.Now
	}
	return &Placeholder{now: now}
}

func (p *Placeholder) Scrape(src Source) []domain.NewsItem {
	published := p.now().UTC()
	summary := PlaceholderSummary
	item := domain.NewsItem{
		Title:       "Sample from " + src.Name,
		Summary:     &summary,
		Source:      strPtr(orDefault(src.Type, "community")),
		Category:    strPtr(orDefault(src.Category, "news")),
		City:        strPtr(orDefault(src.City, "Unknown")),
		PublishedAt: &published,
		IsOfficial:  src.Official,
	}
	if src.URL != "" {
		item.URL = strPtr(src.URL)
	}
	return []domain.NewsItem{item}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func strPtr(s string) *string { return &s }
