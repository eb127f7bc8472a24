package handlers

import (
	"net/http"
	"strings"
	"time"
)

var startTime = time.Now()

// HealthResponse is the liveness probe body
type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"` // seconds since process start
}

// Health is the liveness probe
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(startTime).Seconds(),
	})
}

// NotFound keeps unmatched API routes from falling through to an HTML
// response: anything under /api answers with the JSON 404 body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api") {
		writeMessage(w, http.StatusNotFound, "API route not found")
		return
	}
	writeMessage(w, http.StatusNotFound, "Not found")
}
