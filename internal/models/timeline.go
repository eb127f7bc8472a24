package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timeline entry types rendered on the about page.
const (
	TimelineTypeEducation   = "education"
	TimelineTypeExperience  = "experience"
	TimelineTypeAchievement = "achievement"
	TimelineTypeGoal        = "goal"
	TimelineTypeOther       = "other"
)

type TimelineItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Period      string             `bson:"period" json:"period"`
	Title       string             `bson:"title" json:"title"`
	Subtitle    string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Type        string             `bson:"type" json:"type"`
	Order       int                `bson:"order" json:"order"`
	IsVisible   bool               `bson:"isVisible" json:"isVisible"`
	Icon        string             `bson:"icon" json:"icon"` // standardized icon name
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidTimelineType reports whether t is a declared entry type.
func ValidTimelineType(t string) bool {
	switch t {
	case TimelineTypeEducation, TimelineTypeExperience, TimelineTypeAchievement, TimelineTypeGoal, TimelineTypeOther:
		return true
	}
	return false
}

// Prepare fills generated fields and defaults before insert.
// IsVisible is handled at the API boundary: absent means visible.
func (t *TimelineItem) Prepare() {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.Type == "" {
		t.Type = TimelineTypeExperience
	}
	if t.Icon == "" {
		t.Icon = "briefcase"
	}
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}
