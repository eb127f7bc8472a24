package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Syed-faiz05/portfolio-backend/internal/database"
	"github.com/Syed-faiz05/portfolio-backend/internal/models"
	"github.com/Syed-faiz05/portfolio-backend/pkg/utils"
)

// EnsureAdmin creates the default admin account when the admins
// collection is empty. Idempotent; called once during startup.
func EnsureAdmin(ctx context.Context, username, password string) error {
	count, err := database.DB.Collection("admins").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := createAdmin(ctx, username, password); err != nil {
		return err
	}
	log.Println("Default Admin Created")
	return nil
}

// ResetAdmin removes every admin account and recreates one with the
// given credentials. Only the seed command calls this.
func ResetAdmin(ctx context.Context, username, password string) (models.Admin, error) {
	if _, err := database.DB.Collection("admins").DeleteMany(ctx, bson.M{}); err != nil {
		return models.Admin{}, err
	}
	return createAdmin(ctx, username, password)
}

// ReseedProfile drops the singleton profile and recreates it from the
// schema defaults. Only the seed command calls this.
func ReseedProfile(ctx context.Context) (models.Profile, error) {
	if _, err := database.DB.Collection("profiles").DeleteMany(ctx, bson.M{}); err != nil {
		return models.Profile{}, err
	}
	profile := models.DefaultProfile()
	if _, err := database.DB.Collection("profiles").InsertOne(ctx, profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func createAdmin(ctx context.Context, username, password string) (models.Admin, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.Admin{}, err
	}

	now := time.Now()
	admin := models.Admin{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := database.DB.Collection("admins").InsertOne(ctx, admin); err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}
