package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Syed-faiz05/portfolio-backend/internal/database"
	"github.com/Syed-faiz05/portfolio-backend/internal/models"
	"github.com/Syed-faiz05/portfolio-backend/internal/services"
)

// contextKey is unexported so only this package can write the admin
// value into a request context.
type contextKey string

const adminKey contextKey = "admin"

// Protect gates a route behind a valid bearer token. It verifies the
// Authorization header, resolves the admin behind the token, and
// attaches it to the request context. Any failure ends the request with
// a 401; there is no refresh and no revocation list.
func Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(w, "Not authorized, no token")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		adminID, err := services.VerifyToken(tokenStr)
		if err != nil {
			unauthorized(w, "Not authorized, token failed")
			return
		}

		objectID, err := primitive.ObjectIDFromHex(adminID)
		if err != nil {
			unauthorized(w, "Not authorized, token failed")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var admin models.Admin
		err = database.DB.Collection("admins").FindOne(ctx, bson.M{"_id": objectID}).Decode(&admin)
		if err != nil {
			unauthorized(w, "Not authorized, token failed")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminKey, &admin)))
	})
}

// AdminFromContext returns the authenticated admin attached by Protect.
func AdminFromContext(ctx context.Context) (*models.Admin, bool) {
	admin, ok := ctx.Value(adminKey).(*models.Admin)
	return admin, ok && admin != nil
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
