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

// CreateTimelineItemRequest represents the payload to create a timeline
// entry. IsVisible is a pointer: absent means visible.
type CreateTimelineItemRequest struct {
	Period      string `json:"period"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Order       int    `json:"order"`
	IsVisible   *bool  `json:"isVisible"`
	Icon        string `json:"icon"`
}

// UpdateTimelineItemRequest carries a partial timeline entry update
type UpdateTimelineItemRequest struct {
	Period      *string `json:"period"`
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Order       *int    `json:"order"`
	IsVisible   *bool   `json:"isVisible"`
	Icon        *string `json:"icon"`
}

// ListVisibleTimelineItems returns public timeline entries sorted by order
func ListVisibleTimelineItems(w http.ResponseWriter, r *http.Request) {
	listTimelineItems(w, r, bson.M{"isVisible": true})
}

// ListAllTimelineItems returns every timeline entry, hidden ones
// included (admin)
func ListAllTimelineItems(w http.ResponseWriter, r *http.Request) {
	listTimelineItems(w, r, bson.M{})
}

func listTimelineItems(w http.ResponseWriter, r *http.Request, filter bson.M) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := database.DB.Collection("timelineitems").Find(ctx, filter, findOptions)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	items := make([]models.TimelineItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// CreateTimelineItem creates a timeline entry (admin)
func CreateTimelineItem(w http.ResponseWriter, r *http.Request) {
	var req CreateTimelineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Period == "" {
		writeMessage(w, http.StatusBadRequest, "Period is required")
		return
	}
	if req.Title == "" {
		writeMessage(w, http.StatusBadRequest, "Title is required")
		return
	}
	if req.Type != "" && !models.ValidTimelineType(req.Type) {
		writeMessage(w, http.StatusBadRequest, "Invalid type")
		return
	}

	item := models.TimelineItem{
		Period:      req.Period,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Type:        req.Type,
		Order:       req.Order,
		IsVisible:   req.IsVisible == nil || *req.IsVisible,
		Icon:        req.Icon,
	}
	item.Prepare()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("timelineitems").InsertOne(ctx, item); err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// UpdateTimelineItem merges the supplied fields into a timeline entry (admin)
func UpdateTimelineItem(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid timeline item id")
		return
	}

	var req UpdateTimelineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Type != nil && !models.ValidTimelineType(*req.Type) {
		writeMessage(w, http.StatusBadRequest, "Invalid type")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Period != nil {
		set["period"] = *req.Period
	}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Subtitle != nil {
		set["subtitle"] = *req.Subtitle
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Type != nil {
		set["type"] = *req.Type
	}
	if req.Order != nil {
		set["order"] = *req.Order
	}
	if req.IsVisible != nil {
		set["isVisible"] = *req.IsVisible
	}
	if req.Icon != nil {
		set["icon"] = *req.Icon
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var updated models.TimelineItem
	err = database.DB.Collection("timelineitems").FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeMessage(w, http.StatusNotFound, "Timeline item not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteTimelineItem removes a timeline entry (admin)
func DeleteTimelineItem(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid timeline item id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var deleted models.TimelineItem
	err = database.DB.Collection("timelineitems").FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeMessage(w, http.StatusNotFound, "Timeline item not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Timeline Item Deleted")
}
