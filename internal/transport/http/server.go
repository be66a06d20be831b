package http

import (
	"log/slog"
	"net/http"
)

// NewServer создает HTTP-обработчик с маршрутами API и цепочкой middleware.
// metricsHandler может быть nil, тогда /metrics не регистрируется.
func NewServer(log *slog.Logger, h *Handler, obs RequestObserver, metricsHandler http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.healthCheck)
	mux.HandleFunc("GET /health/db", h.dbHealthCheck)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	mux.HandleFunc("POST /items", h.createItem)
	mux.HandleFunc("GET /items", h.listItems)
	mux.HandleFunc("POST /ingest/from-config", h.ingestFromConfig)
	mux.HandleFunc("POST /comments", h.addComment)
	mux.HandleFunc("GET /comments/{item_id}", h.listComments)

	mux.HandleFunc("POST /listings", h.createListing)
	mux.HandleFunc("GET /listings", h.listListings)
	mux.HandleFunc("POST /community-events", h.createEvent)
	mux.HandleFunc("GET /community-events", h.listEvents)
	mux.HandleFunc("POST /community-events/{event_id}/approve", h.approveEvent)
	mux.HandleFunc("GET /community-events/{event_id}/rsvps", h.listRSVPs)
	mux.HandleFunc("POST /rsvps", h.createRSVP)

	mux.HandleFunc("POST /persons", h.createPerson)
	mux.HandleFunc("GET /persons", h.listPersons)
	mux.HandleFunc("GET /persons/{person_id}", h.getPerson)
	mux.HandleFunc("POST /offices", h.createOffice)
	mux.HandleFunc("GET /offices", h.listOffices)
	mux.HandleFunc("POST /terms", h.createTerm)
	mux.HandleFunc("GET /incumbents", h.listIncumbents)
	mux.HandleFunc("POST /actions", h.createAction)
	mux.HandleFunc("GET /actions", h.listActions)
	mux.HandleFunc("POST /positions", h.createPosition)
	mux.HandleFunc("GET /positions", h.listPositions)

	mux.HandleFunc("POST /races", h.createRace)
	mux.HandleFunc("GET /races", h.listRaces)
	mux.HandleFunc("POST /candidacies", h.createCandidacy)
	mux.HandleFunc("GET /candidates", h.listCandidates)

	mux.HandleFunc("GET /rss/incumbents.xml", h.rssIncumbents)
	mux.HandleFunc("GET /rss/races.xml", h.rssRaces)
	mux.HandleFunc("GET /rss/candidates.xml", h.rssCandidates)
	mux.HandleFunc("GET /rss/person.xml", h.rssPerson)

	var handler http.Handler = mux
	handler = recoveryMiddleware(log)(handler)
	handler = metricsMiddleware(obs)(handler)
	handler = loggingMiddleware(log)(handler)
	handler = requestIDMiddleware()(handler)
	handler = corsMiddleware()(handler)
	return handler
}
