package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Syed-faiz05/portfolio-backend/internal/services"
)

// LeetCodeStats proxies the submission-calendar query to LeetCode's
// GraphQL API and relays the raw response. On upstream failure the
// upstream status is relayed; on transport failure (timeout included)
// the caller gets a 500. Public, no caching.
func LeetCodeStats(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	body, err := services.FetchLeetCodeCalendar(r.Context(), username)
	if err != nil {
		var upstream *services.LeetCodeUpstreamError
		if errors.As(err, &upstream) {
			log.Printf("LeetCode API error: %s", upstream.Status)
			writeJSON(w, upstream.StatusCode, map[string]string{"error": upstream.Error()})
			return
		}
		log.Printf("Error fetching LeetCode data: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch LeetCode data"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
