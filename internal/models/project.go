package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses shown in the admin UI.
const (
	ProjectStatusDraft     = "Draft"
	ProjectStatusPublished = "Published"
	ProjectStatusCompleted = "Completed"
	ProjectStatusOngoing   = "Ongoing"
)

type Project struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	LongDescription string             `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	Images          []string           `bson:"images" json:"images"` // Base64 strings or URLs
	Thumbnail       string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Video           string             `bson:"video,omitempty" json:"video,omitempty"`
	Tags            []string           `bson:"tags" json:"tags"`
	Technologies    []string           `bson:"technologies" json:"technologies"`
	LiveLink        string             `bson:"liveLink,omitempty" json:"liveLink,omitempty"`
	GithubLink      string             `bson:"githubLink,omitempty" json:"githubLink,omitempty"`
	Featured        bool               `bson:"featured" json:"featured"`
	Status          string             `bson:"status" json:"status"`
	Order           int                `bson:"order" json:"order"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// ValidProjectStatus reports whether s is one of the declared statuses.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusPublished, ProjectStatusCompleted, ProjectStatusOngoing:
		return true
	}
	return false
}

// Prepare fills generated fields and defaults before insert.
func (p *Project) Prepare() {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Status == "" {
		p.Status = ProjectStatusPublished
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}
