package domain

import "time"

// NewsItem представляет новость, объявление или документ городской повестки.
// Importance вычисляется один раз при создании и дальше не пересчитывается.
type NewsItem struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Summary     *string    `json:"summary"`
	URL         *string    `json:"url"`
	Source      *string    `json:"source"`
	Category    *string    `json:"category"`
	City        *string    `json:"city"`
	PublishedAt *time.Time `json:"published_at"`
	FetchedAt   *time.Time `json:"fetched_at"`
	Importance  float64    `json:"importance"`
	IsOfficial  bool       `json:"is_official"`
}

// ItemFilter задает фильтры выборки новостей.
type ItemFilter struct {
	City     string
	Category string
	Limit    int
}

// Comment представляет комментарий к новости.
type Comment struct {
	ID        int64      `json:"id"`
	ItemID    int64      `json:"item_id"`
	Author    *string    `json:"author"`
	Body      string     `json:"body"`
	CreatedAt *time.Time `json:"created_at"`
}
