package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"civicpulse/internal/domain"
)

const (
	dbPingTimeout = 2 * time.Second
	maxBodyBytes  = 1 << 20
)

// timeLayouts - принимаемые форматы времени. Время без зоны считается UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime разбирает время в формате RFC 3339 или без часового пояса.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time must be a string: %w", err)
	}
	parsed, err := parseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse time in any known format: %q", s)
}

func (t *flexTime) ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

// decodeJSON читает тело запроса. Ошибка разбора считается невалидным вводом.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Invalid("body", "is not valid JSON: "+err.Error())
	}
	return nil
}

// queryString: отсутствующий параметр дает def, пустой отключает фильтр.
func queryString(q url.Values, key, def string) string {
	if values, ok := q[key]; ok {
		return values[0]
	}
	return def
}

// queryBool: отсутствующий параметр дает def, пустой возвращает nil.
func queryBool(q url.Values, key string, def bool) (*bool, error) {
	values, ok := q[key]
	if !ok {
		return &def, nil
	}
	if values[0] == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(values[0])
	if err != nil {
		return nil, domain.Invalid(key, "must be a boolean")
	}
	return &v, nil
}

// queryInt возвращает 0 для отсутствующего или пустого параметра.
func queryInt(q url.Values, key string) (int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, domain.Invalid(key, "must be a positive integer")
	}
	return v, nil
}

func queryLimit(q url.Values) (int, error) {
	v, err := queryInt(q, "limit")
	return int(v), err
}

func pathID(r *http.Request, key string) (int64, error) {
	v, err := strconv.ParseInt(r.PathValue(key), 10, 64)
	if err != nil || v <= 0 {
		return 0, domain.Invalid(key, "must be a positive integer")
	}
	return v, nil
}

type itemRequest struct {
	Title       string    `json:"title"`
	Summary     *string   `json:"summary"`
	URL         *string   `json:"url"`
	Source      *string   `json:"source"`
	Category    *string   `json:"category"`
	City        *string   `json:"city"`
	PublishedAt *flexTime `json:"published_at"`
	IsOfficial  bool      `json:"is_official"`
}

func (req itemRequest) toDomain() domain.NewsItem {
	return domain.NewsItem{
		Title:       req.Title,
		Summary:     req.Summary,
		URL:         req.URL,
		Source:      req.Source,
		Category:    req.Category,
		City:        req.City,
		PublishedAt: req.PublishedAt.ptr(),
		IsOfficial:  req.IsOfficial,
	}
}

type commentRequest struct {
	ItemID int64   `json:"item_id"`
	Author *string `json:"author"`
	Body   string  `json:"body"`
}

type listingRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Category    *string `json:"category"`
	City        *string `json:"city"`
	Contact     *string `json:"contact"`
	IsActive    *bool   `json:"is_active"`
}

func (req listingRequest) toDomain() domain.Listing {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return domain.Listing{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		City:        req.City,
		Contact:     req.Contact,
		IsActive:    active,
	}
}

type eventRequest struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Venue       *string   `json:"venue"`
	City        *string   `json:"city"`
	StartsAt    *flexTime `json:"starts_at"`
	EndsAt      *flexTime `json:"ends_at"`
	HostContact *string   `json:"host_contact"`
	IsApproved  bool      `json:"is_approved"`
}

func (req eventRequest) toDomain() domain.CommunityEvent {
	e := domain.CommunityEvent{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		City:        req.City,
		EndsAt:      req.EndsAt.ptr(),
		HostContact: req.HostContact,
		IsApproved:  req.IsApproved,
	}
	if start := req.StartsAt.ptr(); start != nil {
		e.StartsAt = *start
	}
	return e
}

type rsvpRequest struct {
	EventID int64   `json:"event_id"`
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Count   *int    `json:"count"`
}

func (req rsvpRequest) toDomain() domain.RSVP {
	count := 1
	if req.Count != nil {
		count = *req.Count
	}
	return domain.RSVP{EventID: req.EventID, Name: req.Name, Email: req.Email, Count: count}
}

type termRequest struct {
	PersonID    int64     `json:"person_id"`
	OfficeID    int64     `json:"office_id"`
	StartDate   *flexTime `json:"start_date"`
	EndDate     *flexTime `json:"end_date"`
	IsIncumbent bool      `json:"is_incumbent"`
}

type actionRequest struct {
	PersonID    int64     `json:"person_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        *flexTime `json:"date"`
	Category    *string   `json:"category"`
	Outcome     *string   `json:"outcome"`
	Sentiment   *string   `json:"sentiment"`
	SourceURL   *string   `json:"source_url"`
}

type positionRequest struct {
	PersonID  int64     `json:"person_id"`
	Topic     string    `json:"topic"`
	Stance    *string   `json:"stance"`
	SourceURL *string   `json:"source_url"`
	Date      *flexTime `json:"date"`
}

type raceRequest struct {
	Name         string    `json:"name"`
	ElectionDate *flexTime `json:"election_date"`
	Jurisdiction string    `json:"jurisdiction"`
	Level        string    `json:"level"`
	OfficeID     *int64    `json:"office_id"`
	IsActive     *bool     `json:"is_active"`
}

type candidacyRequest struct {
	PersonID  int64     `json:"person_id"`
	RaceID    int64     `json:"race_id"`
	Party     *string   `json:"party"`
	Platform  *string   `json:"platform"`
	Website   *string   `json:"website"`
	FiledDate *flexTime `json:"filed_date"`
	Status    *string   `json:"status"`
}

type incumbentPersonView struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	Party    *string `json:"party"`
	Website  *string `json:"website"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	PhotoURL *string `json:"photo_url"`
}

type incumbentView struct {
	Office domain.Office       `json:"office"`
	Person incumbentPersonView `json:"person"`
}

func newIncumbentViews(incumbents []domain.Incumbent) []incumbentView {
	views := make([]incumbentView, 0, len(incumbents))
	for _, inc := range incumbents {
		p := inc.Person
		views = append(views, incumbentView{
			Office: inc.Office,
			Person: incumbentPersonView{
				ID:       p.ID,
				FullName: p.FullName,
				Party:    p.Party,
				Website:  p.Website,
				Email:    p.Email,
				Phone:    p.Phone,
				PhotoURL: p.PhotoURL,
			},
		})
	}
	return views
}

type candidatePersonView struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	Party    *string `json:"party"`
	Website  *string `json:"website"`
	PhotoURL *string `json:"photo_url"`
}

type candidacyView struct {
	ID        int64      `json:"id"`
	RaceID    int64      `json:"race_id"`
	Party     *string    `json:"party"`
	Status    *string    `json:"status"`
	Platform  *string    `json:"platform"`
	Website   *string    `json:"website"`
	FiledDate *time.Time `json:"filed_date"`
}

type candidateView struct {
	Person    candidatePersonView `json:"person"`
	Candidacy candidacyView       `json:"candidacy"`
}

func newCandidateViews(candidates []domain.Candidate) []candidateView {
	views := make([]candidateView, 0, len(candidates))
	for _, c := range candidates {
		views = append(views, candidateView{
			Person: candidatePersonView{
				ID:       c.Person.ID,
				FullName: c.Person.FullName,
				Party:    c.Person.Party,
				Website:  c.Person.Website,
				PhotoURL: c.Person.PhotoURL,
			},
			Candidacy: candidacyView{
				ID:        c.Candidacy.ID,
				RaceID:    c.Candidacy.RaceID,
				Party:     c.Candidacy.Party,
				Status:    c.Candidacy.Status,
				Platform:  c.Candidacy.Platform,
				Website:   c.Candidacy.Website,
				FiledDate: c.Candidacy.FiledDate,
			},
		})
	}
	return views
}
