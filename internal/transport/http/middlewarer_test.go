package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS_Preflight(t *testing.T) {
	rec := do(t, newTestServer(&fakeServices{}, nil), http.MethodOptions, "/items", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRequestID_GeneratedAndPropagated(t *testing.T) {
	srv := newTestServer(&fakeServices{}, nil)

	rec := do(t, srv, http.MethodGet, "/health", "")
	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "client-123")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, "client-123", rec.Header().Get(requestIDHeader))
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	obs := &recordingObserver{}
	srv := newTestServer(&fakeServices{}, obs)

	do(t, srv, http.MethodGet, "/comments/42", "")
	do(t, srv, http.MethodGet, "/nowhere", "")

	require.Len(t, obs.requests, 2)
	assert.Equal(t, requestRecord{method: "GET", endpoint: "GET /comments/{item_id}", status: http.StatusOK}, obs.requests[0])
	assert.Equal(t, requestRecord{method: "GET", endpoint: "unmatched", status: http.StatusNotFound}, obs.requests[1])
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	obs := &recordingObserver{}
	srv := newTestServer(&fakeServices{panicOnListing: true}, obs)

	rec := do(t, srv, http.MethodGet, "/listings", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, obs.requests, 1)
	assert.Equal(t, http.StatusInternalServerError, obs.requests[0].status)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := do(t, newTestServer(&fakeServices{}, nil), http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}
