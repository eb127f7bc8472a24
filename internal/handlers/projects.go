package handlers

import (
	"context"
	"encoding/json"
	"log"
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

// CreateProjectRequest represents the payload to create a project.
// Tags and technologies accept either an array or a comma-separated
// string; models.StringList normalizes them on decode.
type CreateProjectRequest struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	LongDescription string            `json:"longDescription"`
	Images          []string          `json:"images"`
	Thumbnail       string            `json:"thumbnail"`
	Video           string            `json:"video"`
	Tags            models.StringList `json:"tags"`
	Technologies    models.StringList `json:"technologies"`
	LiveLink        string            `json:"liveLink"`
	GithubLink      string            `json:"githubLink"`
	Featured        bool              `json:"featured"`
	Status          string            `json:"status"`
	Order           int               `json:"order"`
}

// UpdateProjectRequest carries a partial project update. Pointer fields
// so an absent field is left untouched.
type UpdateProjectRequest struct {
	Title           *string            `json:"title"`
	Description     *string            `json:"description"`
	LongDescription *string            `json:"longDescription"`
	Images          *[]string          `json:"images"`
	Thumbnail       *string            `json:"thumbnail"`
	Video           *string            `json:"video"`
	Tags            *models.StringList `json:"tags"`
	Technologies    *models.StringList `json:"technologies"`
	LiveLink        *string            `json:"liveLink"`
	GithubLink      *string            `json:"githubLink"`
	Featured        *bool              `json:"featured"`
	Status          *string            `json:"status"`
	Order           *int               `json:"order"`
}

// ListProjects returns all projects, public, sorted by order then recency
func ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	cursor, err := database.DB.Collection("projects").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	projects := make([]models.Project, 0)
	if err := cursor.All(ctx, &projects); err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// CreateProject creates a project (admin)
func CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" {
		writeMessage(w, http.StatusBadRequest, "Title is required")
		return
	}
	if req.Description == "" {
		writeMessage(w, http.StatusBadRequest, "Description is required")
		return
	}
	if req.Status != "" && !models.ValidProjectStatus(req.Status) {
		writeMessage(w, http.StatusBadRequest, "Invalid status")
		return
	}

	project := models.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Images:          req.Images,
		Thumbnail:       req.Thumbnail,
		Video:           req.Video,
		Tags:            req.Tags,
		Technologies:    req.Technologies,
		LiveLink:        req.LiveLink,
		GithubLink:      req.GithubLink,
		Featured:        req.Featured,
		Status:          req.Status,
		Order:           req.Order,
	}
	project.Prepare()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("projects").InsertOne(ctx, project); err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("Project created successfully: %s", project.ID.Hex())
	writeJSON(w, http.StatusCreated, project)
}

// UpdateProject merges the supplied fields into a project (admin)
func UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	var req UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status != nil && !models.ValidProjectStatus(*req.Status) {
		writeMessage(w, http.StatusBadRequest, "Invalid status")
		return
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.LongDescription != nil {
		set["longDescription"] = *req.LongDescription
	}
	if req.Images != nil {
		set["images"] = *req.Images
	}
	if req.Thumbnail != nil {
		set["thumbnail"] = *req.Thumbnail
	}
	if req.Video != nil {
		set["video"] = *req.Video
	}
	if req.Tags != nil {
		set["tags"] = []string(*req.Tags)
	}
	if req.Technologies != nil {
		set["technologies"] = []string(*req.Technologies)
	}
	if req.LiveLink != nil {
		set["liveLink"] = *req.LiveLink
	}
	if req.GithubLink != nil {
		set["githubLink"] = *req.GithubLink
	}
	if req.Featured != nil {
		set["featured"] = *req.Featured
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.Order != nil {
		set["order"] = *req.Order
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// An empty $set is rejected by the server; an empty payload just
	// echoes the current document.
	var updated models.Project
	if len(set) == 0 {
		err = database.DB.Collection("projects").FindOne(ctx, bson.M{"_id": id}).Decode(&updated)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				writeMessage(w, http.StatusNotFound, "Project not found")
				return
			}
			writeMessage(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, updated)
		return
	}
	err = database.DB.Collection("projects").FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeMessage(w, http.StatusNotFound, "Project not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProject removes a project (admin)
func DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var deleted models.Project
	err = database.DB.Collection("projects").FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeMessage(w, http.StatusNotFound, "Project not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Project removed")
}
