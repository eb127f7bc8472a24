package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Syed-faiz05/portfolio-backend/internal/database"
	"github.com/Syed-faiz05/portfolio-backend/internal/models"
	"github.com/Syed-faiz05/portfolio-backend/pkg/clientip"
)

// TrackVisitor logs page views into the visitors collection. Strictly
// best-effort: the write happens on its own goroutine with its own
// timeout, and a failure is logged and swallowed. This middleware must
// never block or fail the request it wraps.
func TrackVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ShouldTrack(r.Method, r.URL.Path) {
			visit := models.Visitor{
				ID:        primitive.NewObjectID(),
				IP:        clientip.RealClientIP(r),
				UserAgent: r.UserAgent(),
				Path:      r.URL.Path,
				Timestamp: time.Now(),
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if _, err := database.DB.Collection("visitors").InsertOne(ctx, visit); err != nil {
					log.Printf("Tracking Error: %v", err)
				}
			}()
		}
		next.ServeHTTP(w, r)
	})
}

// ShouldTrack filters to page-view GETs: API calls and static assets
// (anything with a file extension marker) are ignored to keep the log
// from filling with noise.
func ShouldTrack(method, path string) bool {
	return method == http.MethodGet &&
		!strings.HasPrefix(path, "/api") &&
		!strings.Contains(path, ".")
}
