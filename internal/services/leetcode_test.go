package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// pointLeetCodeAt redirects the upstream endpoint to a test server and
// restores it afterwards.
func pointLeetCodeAt(t *testing.T, url string) {
	t.Helper()
	old := LeetCodeEndpoint
	LeetCodeEndpoint = url
	t.Cleanup(func() { LeetCodeEndpoint = old })
}

func TestFetchLeetCodeCalendar_RelaysBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			Query     string            `json:"query"`
			Variables map[string]string `json:"variables"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload.Query, "userProfileCalendar")
		assert.Equal(t, "Syed_Faiz05", payload.Variables["username"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"matchedUser":{"userCalendar":{"streak":7}}}}`))
	}))
	defer upstream.Close()
	pointLeetCodeAt(t, upstream.URL)

	body, err := FetchLeetCodeCalendar(context.Background(), "Syed_Faiz05")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"data":{"matchedUser":{"userCalendar":{"streak":7}}}}`, string(body))
}

func TestFetchLeetCodeCalendar_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer upstream.Close()
	pointLeetCodeAt(t, upstream.URL)

	_, err := FetchLeetCodeCalendar(context.Background(), "someone")
	assert.Error(t, err)

	var upstreamErr *LeetCodeUpstreamError
	assert.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
}

func TestFetchLeetCodeCalendar_Timeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer upstream.Close()
	pointLeetCodeAt(t, upstream.URL)

	oldClient := leetcodeClient
	leetcodeClient = &http.Client{Timeout: 20 * time.Millisecond}
	t.Cleanup(func() { leetcodeClient = oldClient })

	_, err := FetchLeetCodeCalendar(context.Background(), "someone")
	assert.Error(t, err)

	// A transport failure is not an upstream status error
	var upstreamErr *LeetCodeUpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
}
