package http

import (
	"net/http"

	"civicpulse/internal/domain"
)

// createRace - POST /races
func (h *Handler) createRace(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/createRace"
	log := h.requestLogger(r, op)
	var req raceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	race, err := h.services.Elections.CreateRace(r.Context(), domain.Race{
		Name:         req.Name,
		ElectionDate: req.ElectionDate.ptr(),
		Jurisdiction: req.Jurisdiction,
		Level:        req.Level,
		OfficeID:     req.OfficeID,
		IsActive:     active,
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, race)
}

// listRaces - GET /races
func (h *Handler) listRaces(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listRaces"
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
	races, err := h.services.Elections.ListRaces(r.Context(), domain.RaceFilter{
		Active:       active,
		Jurisdiction: q.Get("jurisdiction"),
		Level:        q.Get("level"),
		Limit:        limit,
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithList(w, races)
}

// createCandidacy - POST /candidacies
func (h *Handler) createCandidacy(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/createCandidacy"
	log := h.requestLogger(r, op)
	var req candidacyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	c, err := h.services.Elections.CreateCandidacy(r.Context(), domain.Candidacy{
		PersonID:  req.PersonID,
		RaceID:    req.RaceID,
		Party:     req.Party,
		Platform:  req.Platform,
		Website:   req.Website,
		FiledDate: req.FiledDate.ptr(),
		Status:    req.Status,
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, c)
}

// listCandidates - GET /candidates
func (h *Handler) listCandidates(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listCandidates"
	log := h.requestLogger(r, op)
	raceID, err := queryInt(r.URL.Query(), "race_id")
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	candidates, err := h.services.Elections.ListCandidates(r.Context(), raceID)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newCandidateViews(candidates))
}
