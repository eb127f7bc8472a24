package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldTrack(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   bool
	}{
		{"page view", http.MethodGet, "/", true},
		{"section page", http.MethodGet, "/projects", true},
		{"nested page", http.MethodGet, "/about/experience", true},
		{"api call", http.MethodGet, "/api/projects", false},
		{"api health", http.MethodGet, "/api/health", false},
		{"static asset", http.MethodGet, "/assets/app.js", false},
		{"favicon", http.MethodGet, "/favicon.ico", false},
		{"post", http.MethodPost, "/", false},
		{"put", http.MethodPut, "/projects", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldTrack(tt.method, tt.path))
		})
	}
}
