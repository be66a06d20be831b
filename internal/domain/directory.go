package domain

import "time"

// Person представляет должностное лицо или кандидата.
type Person struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	Party    *string `json:"party"`
	Website  *string `json:"website"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	PhotoURL *string `json:"photo_url"`
	Bio      *string `json:"bio"`
}

type PersonFilter struct {
	Party string
	Query string
	Limit int
}

// Office представляет выборную должность в юрисдикции.
type Office struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Jurisdiction string  `json:"jurisdiction"`
	Level        string  `json:"level"`
	District     *string `json:"district"`
}

type OfficeFilter struct {
	Jurisdiction string
	Level        string
	Limit        int
}

// Term связывает человека с должностью на срок полномочий.
type Term struct {
	ID          int64      `json:"id"`
	PersonID    int64      `json:"person_id"`
	OfficeID    int64      `json:"office_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsIncumbent bool       `json:"is_incumbent"`
}

// Incumbent - действующий срок вместе с должностью и человеком.
type Incumbent struct {
	TermID int64
	Office Office
	Person Person
}

// Action - запись о деятельности: голосование, законопроект, заявление.
type Action struct {
	ID          int64      `json:"id"`
	PersonID    int64      `json:"person_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Category    *string    `json:"category"`
	Outcome     *string    `json:"outcome"`
	Sentiment   *string    `json:"sentiment"`
	SourceURL   *string    `json:"source_url"`
}

type ActionFilter struct {
	PersonID int64
	Category string
	Limit    int
}

// Position - публичная позиция человека по теме.
type Position struct {
	ID        int64      `json:"id"`
	PersonID  int64      `json:"person_id"`
	Topic     string     `json:"topic"`
	Stance    *string    `json:"stance"`
	SourceURL *string    `json:"source_url"`
	Date      *time.Time `json:"date"`
}

type PositionFilter struct {
	PersonID int64
	Topic    string
	Limit    int
}
