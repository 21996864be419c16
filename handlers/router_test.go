// ABOUTME: Tests for router-level behavior
// ABOUTME: Health check, 404 fallback, request IDs, and first-request seeding
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "CRM API", body["name"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestUnknownRouteReturns404(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/nope", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", errorMessage(t, w))
}

func TestRequestIDGenerated(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/", nil)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDEchoed(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "trace-me-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "trace-me-123", w.Header().Get("X-Request-ID"))
}

func TestFirstRequestSeedsStore(t *testing.T) {
	router, st := newTestRouter()
	require.False(t, st.IsSeeded())

	doRequest(t, router, http.MethodGet, "/", nil)
	assert.True(t, st.IsSeeded())
	assert.Len(t, st.Contacts(), 10)
	assert.Len(t, st.Companies(), 8)
	assert.Len(t, st.Deals(), 8)
	assert.Len(t, st.Activities(), 8)
}

func TestSeedingDoesNotRepeat(t *testing.T) {
	router, st := newTestRouter()

	doRequest(t, router, http.MethodGet, "/", nil)
	doRequest(t, router, http.MethodDelete, "/api/contacts/c1", nil)
	doRequest(t, router, http.MethodGet, "/", nil)

	// Deleting one contact leaves the store seeded, so the sample data
	// must not be reloaded over the mutation.
	assert.Len(t, st.Contacts(), 9)
}
