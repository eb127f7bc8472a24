package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Syed-faiz05/portfolio-backend/internal/database"
	"github.com/Syed-faiz05/portfolio-backend/internal/models"
)

// CreateSkillRequest represents the payload to create a skill
type CreateSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
}

// UpdateSkillRequest carries a partial skill update
type UpdateSkillRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *int    `json:"level"`
	Icon     *string `json:"icon"`
	Order    *int    `json:"order"`
}

// ListSkills returns all skills, public, sorted by order
func ListSkills(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := database.DB.Collection("skills").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	skills := make([]models.Skill, 0)
	if err := cursor.All(ctx, &skills); err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, skills)
}

// CreateSkill creates a skill (admin)
func CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "Name is required")
		return
	}
	if req.Category != "" && !models.ValidSkillCategory(req.Category) {
		writeMessage(w, http.StatusBadRequest, "Invalid category")
		return
	}
	if req.Level != 0 && !models.ValidSkillLevel(req.Level) {
		writeMessage(w, http.StatusBadRequest, "Level must be between 1 and 100")
		return
	}

	skill := models.Skill{
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
		Icon:     req.Icon,
		Order:    req.Order,
	}
	skill.Prepare()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("skills").InsertOne(ctx, skill); err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, skill)
}

// UpdateSkill merges the supplied fields into a skill (admin)
func UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid skill id")
		return
	}

	var req UpdateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Category != nil && !models.ValidSkillCategory(*req.Category) {
		writeMessage(w, http.StatusBadRequest, "Invalid category")
		return
	}
	if req.Level != nil && !models.ValidSkillLevel(*req.Level) {
		writeMessage(w, http.StatusBadRequest, "Level must be between 1 and 100")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Level != nil {
		set["level"] = *req.Level
	}
	if req.Icon != nil {
		set["icon"] = *req.Icon
	}
	if req.Order != nil {
		set["order"] = *req.Order
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var updated models.Skill
	err = database.DB.Collection("skills").FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeMessage(w, http.StatusNotFound, "Skill not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteSkill removes a skill (admin)
func DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid skill id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var deleted models.Skill
	err = database.DB.Collection("skills").FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeMessage(w, http.StatusNotFound, "Skill not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Skill removed")
}
