package handlers

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Syed-faiz05/portfolio-backend/internal/database"
	"github.com/Syed-faiz05/portfolio-backend/internal/models"
)

// DashboardCounts holds the per-collection totals
type DashboardCounts struct {
	Projects int64 `json:"projects"`
	Skills   int64 `json:"skills"`
	Messages int64 `json:"messages"`
}

// DashboardStatsResponse is the admin dashboard summary
type DashboardStatsResponse struct {
	Counts         DashboardCounts  `json:"counts"`
	RecentMessages []models.Message `json:"recentMessages"`
	RecentProjects []models.Project `json:"recentProjects"`
}

// DashboardStats assembles totals and recent items for the admin
// dashboard. The reads are independent, not a transaction; a torn view
// across them is acceptable for a best-effort summary.
func DashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	totalProjects, err := database.DB.Collection("projects").CountDocuments(ctx, bson.M{})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	totalSkills, err := database.DB.Collection("skills").CountDocuments(ctx, bson.M{})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	totalMessages, err := database.DB.Collection("messages").CountDocuments(ctx, bson.M{})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	recentMessages := make([]models.Message, 0, 5)
	cursor, err := database.DB.Collection("messages").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5))
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := cursor.All(ctx, &recentMessages); err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	recentProjects := make([]models.Project, 0, 5)
	cursor, err = database.DB.Collection("projects").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5))
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := cursor.All(ctx, &recentProjects); err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, DashboardStatsResponse{
		Counts: DashboardCounts{
			Projects: totalProjects,
			Skills:   totalSkills,
			Messages: totalMessages,
		},
		RecentMessages: recentMessages,
		RecentProjects: recentProjects,
	})
}
