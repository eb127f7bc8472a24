package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill categories the frontend groups by.
const (
	SkillCategoryFrontend = "Frontend"
	SkillCategoryBackend  = "Backend"
	SkillCategoryTools    = "Tools"
	SkillCategoryOther    = "Other"
)

type Skill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"`
	Level     int                `bson:"level" json:"level"` // Percentage, 1-100
	Icon      string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidSkillCategory reports whether c is a declared category.
func ValidSkillCategory(c string) bool {
	switch c {
	case SkillCategoryFrontend, SkillCategoryBackend, SkillCategoryTools, SkillCategoryOther:
		return true
	}
	return false
}

// ValidSkillLevel reports whether l is inside the 1-100 range.
func ValidSkillLevel(l int) bool {
	return l >= 1 && l <= 100
}

// Prepare fills generated fields and defaults before insert.
func (s *Skill) Prepare() {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.Category == "" {
		s.Category = SkillCategoryOther
	}
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}
