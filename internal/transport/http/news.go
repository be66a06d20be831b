package http

import (
	"log/slog"
	"net/http"

	"civicpulse/internal/domain"
)

// createItem - POST /items
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/createItem"
	log := h.requestLogger(r, op)
	var req itemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	item, err := h.services.News.CreateItem(r.Context(), req.toDomain())
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// listItems - GET /items
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listItems"
	log := h.requestLogger(r, op)
	q := r.URL.Query()
	limit, err := queryLimit(q)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	items, err := h.services.News.ListItems(r.Context(), domain.ItemFilter{
		City:     q.Get("city"),
		Category: q.Get("category"),
		Limit:    limit,
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithList(w, items)
}

// ingestFromConfig - POST /ingest/from-config
func (h *Handler) ingestFromConfig(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/ingestFromConfig"
	log := h.requestLogger(r, op)
	created, err := h.services.Ingest.FromConfig(r.Context())
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	log.Info("ingest finished", slog.Int("created", created))
	respondWithJSON(w, http.StatusOK, map[string]int{"created": created})
}

// addComment - POST /comments
func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/addComment"
	log := h.requestLogger(r, op)
	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	c, err := h.services.Comments.AddComment(r.Context(), domain.Comment{
		ItemID: req.ItemID,
		Author: req.Author,
		Body:   req.Body,
	})
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithJSON(w, http.StatusOK, c)
}

// listComments - GET /comments/{item_id}
func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/listComments"
	log := h.requestLogger(r, op)
	itemID, err := pathID(r, "item_id")
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	comments, err := h.services.Comments.ListComments(r.Context(), itemID)
	if err != nil {
		respondWithDomainError(w, log, err)
		return
	}
	respondWithList(w, comments)
}
