package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/Syed-faiz05/portfolio-backend/internal/services"
)

func newLeetCodeRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/leetcode/{username}", LeetCodeStats)
	return r
}

func TestLeetCodeStats_RelaysUpstreamBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"matchedUser":null}}`))
	}))
	defer upstream.Close()

	old := services.LeetCodeEndpoint
	services.LeetCodeEndpoint = upstream.URL
	t.Cleanup(func() { services.LeetCodeEndpoint = old })

	req := httptest.NewRequest(http.MethodGet, "/api/leetcode/Syed_Faiz05", nil)
	rr := httptest.NewRecorder()
	newLeetCodeRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"matchedUser":null}}`, rr.Body.String())
}

func TestLeetCodeStats_RelaysUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer upstream.Close()

	old := services.LeetCodeEndpoint
	services.LeetCodeEndpoint = upstream.URL
	t.Cleanup(func() { services.LeetCodeEndpoint = old })

	req := httptest.NewRequest(http.MethodGet, "/api/leetcode/someone", nil)
	rr := httptest.NewRecorder()
	newLeetCodeRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "LeetCode API error")
}

func TestLeetCodeStats_TransportFailure(t *testing.T) {
	// A closed server makes the outbound call fail immediately
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	old := services.LeetCodeEndpoint
	services.LeetCodeEndpoint = upstream.URL
	t.Cleanup(func() { services.LeetCodeEndpoint = old })

	req := httptest.NewRequest(http.MethodGet, "/api/leetcode/someone", nil)
	rr := httptest.NewRecorder()
	newLeetCodeRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch LeetCode data", body["error"])
}
