package domain

import "time"

// Race представляет избирательную кампанию на должность.
type Race struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	ElectionDate *time.Time `json:"election_date"`
	Jurisdiction string     `json:"jurisdiction"`
	Level        string     `json:"level"`
	OfficeID     *int64     `json:"office_id"`
	IsActive     bool       `json:"is_active"`
}

// RaceFilter задает фильтры выборки кампаний. Active == nil означает
// "любые".
type RaceFilter struct {
	Active       *bool
	Jurisdiction string
	Level        string
	Limit        int
}

// Candidacy - участие человека в кампании.
type Candidacy struct {
	ID        int64      `json:"id"`
	PersonID  int64      `json:"person_id"`
	RaceID    int64      `json:"race_id"`
	Party     *string    `json:"party"`
	Platform  *string    `json:"platform"`
	Website   *string    `json:"website"`
	FiledDate *time.Time `json:"filed_date"`
	Status    *string    `json:"status"`
}

// Candidate - кандидатура вместе с человеком.
type Candidate struct {
	Candidacy Candidacy
	Person    Person
}
