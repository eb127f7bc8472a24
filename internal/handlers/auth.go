package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Syed-faiz05/portfolio-backend/internal/database"
	"github.com/Syed-faiz05/portfolio-backend/internal/middleware"
	"github.com/Syed-faiz05/portfolio-backend/internal/models"
	"github.com/Syed-faiz05/portfolio-backend/internal/services"
	"github.com/Syed-faiz05/portfolio-backend/pkg/utils"
)

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned on login and admin profile update
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// UpdateAdminRequest represents the admin credential update payload
type UpdateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates the admin and returns a bearer token
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log.Printf("Login attempt: %s", req.Username)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var admin models.Admin
	err := database.DB.Collection("admins").FindOne(ctx, bson.M{"username": req.Username}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	valid, err := utils.VerifyPassword(req.Password, admin.Password)
	if err != nil || !valid {
		writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := services.GenerateToken(admin.ID.Hex())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		ID:       admin.ID.Hex(),
		Username: admin.Username,
		Token:    token,
	})
}

// UpdateAdminProfile changes the admin username and/or password and
// returns a refreshed token
func UpdateAdminProfile(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	var req UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Username != "" {
		set["username"] = req.Username
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, err.Error())
			return
		}
		set["password"] = hash
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var updated models.Admin
	err := database.DB.Collection("admins").FindOneAndUpdate(
		ctx,
		bson.M{"_id": admin.ID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeMessage(w, http.StatusNotFound, "Admin not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := services.GenerateToken(updated.ID.Hex())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		ID:       updated.ID.Hex(),
		Username: updated.Username,
		Token:    token,
	})
}

// Me echoes the authenticated admin
func Me(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}
	writeJSON(w, http.StatusOK, admin)
}
