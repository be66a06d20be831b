package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"civicpulse/internal/domain"
	"civicpulse/internal/feed"
)

func respondWithFeed(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", feed.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

// rssIncumbents - GET /rss/incumbents.xml
func (h *Handler) rssIncumbents(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/rssIncumbents"
	jurisdiction := queryString(r.URL.Query(), "jurisdiction", h.defaults.DefaultJurisdiction)
	doc, err := h.services.Feeds.IncumbentsFeed(r.Context(), jurisdiction)
	if err != nil {
		respondWithDomainError(w, h.requestLogger(r, op), err)
		return
	}
	respondWithFeed(w, doc)
}

// rssRaces - GET /rss/races.xml
func (h *Handler) rssRaces(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/rssRaces"
	q := r.URL.Query()
	doc, err := h.services.Feeds.RacesFeed(r.Context(),
		queryString(q, "jurisdiction", h.defaults.DefaultJurisdiction),
		queryString(q, "level", h.defaults.DefaultRaceLevel),
	)
	if err != nil {
		respondWithDomainError(w, h.requestLogger(r, op), err)
		return
	}
	respondWithFeed(w, doc)
}

// rssCandidates - GET /rss/candidates.xml
func (h *Handler) rssCandidates(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/rssCandidates"
	log := h.requestLogger(r, op)
	raceID, err := queryInt(r.URL.Query(), "race_id")
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	doc, err := h.services.Feeds.CandidatesFeed(r.Context(), raceID)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithFeed(w, doc)
}

// rssPerson - GET /rss/person.xml. Неизвестный или невалидный person_id дает 404 с текстом.
func (h *Handler) rssPerson(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/rssPerson"
	log := h.requestLogger(r, op)
	raw := r.URL.Query().Get("person_id")
	personID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || personID <= 0 {
		log.Warn("invalid person_id", slog.String("person_id", raw))
		respondNotFoundText(w)
		return
	}
	doc, err := h.services.Feeds.PersonFeed(r.Context(), personID)
	if errors.Is(err, domain.ErrNotFound) {
		respondNotFoundText(w)
		return
	}
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithFeed(w, doc)
}

func respondNotFoundText(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Not found"))
}
