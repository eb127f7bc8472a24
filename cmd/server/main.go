package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/Syed-faiz05/portfolio-backend/internal/config"
	"github.com/Syed-faiz05/portfolio-backend/internal/database"
	"github.com/Syed-faiz05/portfolio-backend/internal/middleware"
	"github.com/Syed-faiz05/portfolio-backend/internal/routes"
	"github.com/Syed-faiz05/portfolio-backend/internal/services"
)

func main() {
	// Load env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Warn loudly when running on the fallback signing secret
	if cfg.JWTSecret == "your-secret-key-change-in-production" {
		log.Println("⚠️  WARNING: JWT_SECRET not set, using the insecure default.")
		log.Println("   To generate a secret, run: openssl rand -hex 32")
	}
	services.InitAuth(cfg.JWTSecret)

	// Log connection attempt (without showing password)
	log.Printf("Connecting to MongoDB...")
	if cfg.MongoURI != "" {
		maskedURI := cfg.MongoURI
		if strings.Contains(maskedURI, "@") {
			parts := strings.Split(maskedURI, "@")
			if len(parts) > 0 && strings.Contains(parts[0], ":") {
				userPass := strings.Split(parts[0], ":")
				if len(userPass) >= 3 {
					maskedURI = strings.Replace(maskedURI, userPass[2], "***", 1)
				}
			}
		}
		log.Printf("MongoDB URI: %s", maskedURI)
	}

	// Connect to MongoDB
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Println("Make sure your IP is whitelisted in MongoDB Atlas or your local DB is running.")
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Seed the default admin when the collection is empty
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := services.EnsureAdmin(seedCtx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Printf("⚠️  WARNING: failed to seed default admin: %v", err)
	}
	seedCancel()

	// Setup router
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Best-effort page view tracking on every request
	r.Use(middleware.TrackVisitor)

	// Setup routes
	routes.SetupRoutes(r)

	log.Printf("🚀 Portfolio backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
