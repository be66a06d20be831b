package http

import (
	"net/http"

	"civicpulse/internal/domain"
)

// createPerson - POST /persons
func (h *Handler) createPerson(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/createPerson"
	log := h.requestLogger(r, op)
	var req domain.Person
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	p, err := h.services.Directory.CreatePerson(r.Context(), req)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, p)
}

// getPerson - GET /persons/{person_id}
func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/getPerson"
	log := h.requestLogger(r, op)
	id, err := pathID(r, "person_id")
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	p, err := h.services.Directory.GetPerson(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, p)
}

// listPersons - GET /persons
func (h *Handler) listPersons(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listPersons"
	log := h.requestLogger(r, op)
	q := r.URL.Query()
	limit, err := queryLimit(q)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	persons, err := h.services.Directory.ListPersons(r.Context(), domain.PersonFilter{
		Party: q.Get("party"),
		Query: q.Get("q"),
		Limit: limit,
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithList(w, persons)
}

// createOffice - POST /offices
func (h *Handler) createOffice(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/createOffice"
	log := h.requestLogger(r, op)
	var req domain.Office
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	o, err := h.services.Directory.CreateOffice(r.Context(), req)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, o)
}

// listOffices - GET /offices
func (h *Handler) listOffices(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listOffices"
	log := h.requestLogger(r, op)
	q := r.URL.Query()
	limit, err := queryLimit(q)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	offices, err := h.services.Directory.ListOffices(r.Context(), domain.OfficeFilter{
		Jurisdiction: queryString(q, "jurisdiction", h.defaults.DefaultJurisdiction),
		Level:        q.Get("level"),
		Limit:        limit,
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithList(w, offices)
}

// createTerm - POST /terms
func (h *Handler) createTerm(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/createTerm"
	log := h.requestLogger(r, op)
	var req termRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	t, err := h.services.Directory.CreateTerm(r.Context(), domain.Term{
		PersonID:    req.PersonID,
		OfficeID:    req.OfficeID,
		StartDate:   req.StartDate.ptr(),
		EndDate:     req.EndDate.ptr(),
		IsIncumbent: req.IsIncumbent,
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, t)
}

// listIncumbents - GET /incumbents
func (h *Handler) listIncumbents(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listIncumbents"
	log := h.requestLogger(r, op)
	jurisdiction := queryString(r.URL.Query(), "jurisdiction", h.defaults.DefaultJurisdiction)
	incumbents, err := h.services.Directory.ListIncumbents(r.Context(), jurisdiction)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newIncumbentViews(incumbents))
}

// createAction - POST /actions
func (h *Handler) createAction(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/createAction"
	log := h.requestLogger(r, op)
	var req actionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	a, err := h.services.Directory.CreateAction(r.Context(), domain.Action{
		PersonID:    req.PersonID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.ptr(),
		Category:    req.Category,
		Outcome:     req.Outcome,
		Sentiment:   req.Sentiment,
		SourceURL:   req.SourceURL,
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, a)
}

// listActions - GET /actions
func (h *Handler) listActions(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listActions"
	log := h.requestLogger(r, op)
	q := r.URL.Query()
	limit, err := queryLimit(q)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	personID, err := queryInt(q, "person_id")
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	actions, err := h.services.Directory.ListActions(r.Context(), domain.ActionFilter{
		PersonID: personID,
		Category: q.Get("category"),
		Limit:    limit,
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithList(w, actions)
}

// createPosition - POST /positions
func (h *Handler) createPosition(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/createPosition"
	log := h.requestLogger(r, op)
	var req positionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	p, err := h.services.Directory.CreatePosition(r.Context(), domain.Position{
		PersonID:  req.PersonID,
		Topic:     req.Topic,
		Stance:    req.Stance,
		SourceURL: req.SourceURL,
		Date:      req.Date.ptr(),
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, p)
}

// listPositions - GET /positions
func (h *Handler) listPositions(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listPositions"
	log := h.requestLogger(r, op)
	q := r.URL.Query()
	limit, err := queryLimit(q)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	personID, err := queryInt(q, "person_id")
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	positions, err := h.services.Directory.ListPositions(r.Context(), domain.PositionFilter{
		PersonID: personID,
		Topic:    q.Get("topic"),
		Limit:    limit,
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithList(w, positions)
}
