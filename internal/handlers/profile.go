package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Syed-faiz05/portfolio-backend/internal/database"
	"github.com/Syed-faiz05/portfolio-backend/internal/models"
)

// UpdateProfileRequest carries the recognized singleton profile fields.
// Pointers so an absent field is left untouched.
type UpdateProfileRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Bio         string `json:"bio"`
	ResumeURL   string `json:"resumeUrl"`
	SocialLinks *struct {
		Github   *string `json:"github"`
		Linkedin *string `json:"linkedin"`
		Leetcode *string `json:"leetcode"`
		Email    *string `json:"email"`
	} `json:"socialLinks"`
}

// GetProfile returns the singleton profile, creating it from defaults
// when missing. A stored profile still carrying the legacy placeholder
// name is treated as stale and recreated — a one-time migration shim,
// not steady-state behavior.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	profiles := database.DB.Collection("profiles")

	var profile models.Profile
	err := profiles.FindOne(ctx, bson.M{}).Decode(&profile)
	if err != nil && err != mongo.ErrNoDocuments {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err == mongo.ErrNoDocuments || profile.Name == models.LegacyProfileName {
		if err == nil {
			if _, delErr := profiles.DeleteOne(ctx, bson.M{"_id": profile.ID}); delErr != nil {
				writeMessage(w, http.StatusInternalServerError, delErr.Error())
				return
			}
		}
		profile = models.DefaultProfile()
		if _, insErr := profiles.InsertOne(ctx, profile); insErr != nil {
			writeMessage(w, http.StatusInternalServerError, insErr.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile merges the supplied fields into the singleton profile,
// creating it first when absent.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	profiles := database.DB.Collection("profiles")

	// Ensure the singleton exists before updating it
	var current models.Profile
	err := profiles.FindOne(ctx, bson.M{}).Decode(&current)
	if err == mongo.ErrNoDocuments {
		current = models.DefaultProfile()
		if _, insErr := profiles.InsertOne(ctx, current); insErr != nil {
			writeMessage(w, http.StatusInternalServerError, insErr.Error())
			return
		}
	} else if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Title != "" {
		set["title"] = req.Title
	}
	if req.Bio != "" {
		set["bio"] = req.Bio
	}
	if req.ResumeURL != "" {
		set["resumeUrl"] = req.ResumeURL
	}
	if req.SocialLinks != nil {
		if req.SocialLinks.Github != nil {
			set["socialLinks.github"] = *req.SocialLinks.Github
		}
		if req.SocialLinks.Linkedin != nil {
			set["socialLinks.linkedin"] = *req.SocialLinks.Linkedin
		}
		if req.SocialLinks.Leetcode != nil {
			set["socialLinks.leetcode"] = *req.SocialLinks.Leetcode
		}
		if req.SocialLinks.Email != nil {
			set["socialLinks.email"] = *req.SocialLinks.Email
		}
	}

	var updated models.Profile
	err = profiles.FindOneAndUpdate(
		ctx,
		bson.M{"_id": current.ID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
