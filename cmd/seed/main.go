// Command seed holds the one-off maintenance actions that are not part
// of the running server: resetting the admin credentials and reseeding
// the singleton profile.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Syed-faiz05/portfolio-backend/internal/config"
	"github.com/Syed-faiz05/portfolio-backend/internal/database"
	"github.com/Syed-faiz05/portfolio-backend/internal/services"
)

func main() {
	resetAdmin := flag.Bool("reset-admin", false, "delete all admins and recreate one from ADMIN_USERNAME/ADMIN_PASSWORD")
	seedProfile := flag.Bool("seed-profile", false, "delete and recreate the singleton profile from defaults")
	flag.Parse()

	if !*resetAdmin && !*seedProfile {
		flag.Usage()
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *resetAdmin {
		admin, err := services.ResetAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			log.Fatal("Failed to reset admin:", err)
		}
		log.Println("Existing admins removed")
		log.Printf("New Admin Created: %s", admin.Username)
	}

	if *seedProfile {
		profile, err := services.ReseedProfile(ctx)
		if err != nil {
			log.Fatal("Failed to seed profile:", err)
		}
		log.Printf("Profile Seeded Successfully: %s (%s)", profile.Name, profile.Title)
	}
}
