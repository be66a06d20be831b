package http

import (
	"net/http"

	"civicpulse/internal/domain"
)

// createListing - POST /listings
func (h *Handler) createListing(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/createListing"
	log := h.requestLogger(r, op)
	var req listingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	l, err := h.services.Marketplace.CreateListing(r.Context(), req.toDomain())
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, l)
}

// listListings - GET /listings
func (h *Handler) listListings(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listListings"
	log := h.requestLogger(r, op)
	q := r.URL.Query()
	limit, err := queryLimit(q)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	active, err := queryBool(q, "active", true)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	f := domain.ListingFilter{
		City:     queryString(q, "city", h.defaults.DefaultCity),
		Category: q.Get("category"),
		Active:   active,
		Limit:    limit,
	}
	listings, err := h.services.Marketplace.ListListings(r.Context(), f)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithList(w, listings)
}

// createEvent - POST /community-events
func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/createEvent"
	log := h.requestLogger(r, op)
	var req eventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	e, err := h.services.Events.CreateEvent(r.Context(), req.toDomain())
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, e)
}

// approveEvent - POST /community-events/{event_id}/approve
func (h *Handler) approveEvent(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/approveEvent"
	log := h.requestLogger(r, op)
	id, err := pathID(r, "event_id")
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	if err := h.services.Events.ApproveEvent(r.Context(), id); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// listEvents - GET /community-events
func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listEvents"
	log := h.requestLogger(r, op)
	q := r.URL.Query()
	limit, err := queryLimit(q)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	upcoming, err := queryBool(q, "upcoming_only", true)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	city := queryString(q, "city", h.defaults.DefaultCity)
	events, err := h.services.Events.ListEvents(r.Context(), city, upcoming != nil && *upcoming, limit)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithList(w, events)
}

// createRSVP - POST /rsvps
func (h *Handler) createRSVP(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/createRSVP"
	log := h.requestLogger(r, op)
	var req rsvpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	rsvp, err := h.services.Events.CreateRSVP(r.Context(), req.toDomain())
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rsvp)
}

// listRSVPs - GET /community-events/{event_id}/rsvps
func (h *Handler) listRSVPs(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listRSVPs"
	log := h.requestLogger(r, op)
	id, err := pathID(r, "event_id")
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	rsvps, err := h.services.Events.ListRSVPs(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithList(w, rsvps)
}
