package domain

import "time"

// Listing представляет объявление на локальной барахолке.
type Listing struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Price       float64    `json:"price"`
	Category    *string    `json:"category"`
	City        *string    `json:"city"`
	Contact     *string    `json:"contact"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   *time.Time `json:"created_at"`
}

type ListingFilter struct {
	City     string
	Category string
	Active   *bool
	Limit    int
}

// CommunityEvent представляет событие, предложенное жителями.
// В публичной выдаче участвуют только одобренные модератором события.
type CommunityEvent struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Venue       *string    `json:"venue"`
	City        *string    `json:"city"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	HostContact *string    `json:"host_contact"`
	IsApproved  bool       `json:"is_approved"`
	CreatedAt   *time.Time `json:"created_at"`
}

// EventFilter задает фильтры выборки событий. StartsAfter пустой, если
// нужны и прошедшие события.
type EventFilter struct {
	City        string
	StartsAfter *time.Time
	Limit       int
}

// RSVP представляет отклик на событие.
type RSVP struct {
	ID        int64      `json:"id"`
	EventID   int64      `json:"event_id"`
	Name      string     `json:"name"`
	Email     *string    `json:"email"`
	Count     int        `json:"count"`
	CreatedAt *time.Time `json:"created_at"`
}
