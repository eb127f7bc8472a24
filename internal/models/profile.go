package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LegacyProfileName is the placeholder name an early deploy seeded.
// GetProfile treats a stored profile carrying it as stale and recreates
// the document from defaults. Remove once no database still has one.
const LegacyProfileName = "My Name"

type SocialLinks struct {
	Github   string `bson:"github" json:"github"`
	Linkedin string `bson:"linkedin" json:"linkedin"`
	Leetcode string `bson:"leetcode" json:"leetcode"`
	Email    string `bson:"email" json:"email"`
}

// Profile is a singleton collection: the site owner's public identity.
type Profile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Title       string             `bson:"title" json:"title"`
	Bio         string             `bson:"bio" json:"bio"`
	ResumeURL   string             `bson:"resumeUrl" json:"resumeUrl"`
	SocialLinks SocialLinks        `bson:"socialLinks" json:"socialLinks"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultProfile returns the profile seeded on first read.
func DefaultProfile() Profile {
	now := time.Now()
	return Profile{
		ID:        primitive.NewObjectID(),
		Name:      "Syed Faiz",
		Title:     "Full Stack Web Developer",
		Bio: "Full Stack Developer & Junior Data Scientist with a passion for building scalable web applications " +
			"and data-driven solutions. Specialized in React, Node.js, and Python, I transform complex problems " +
			"into intuitive, user-centric digital experiences.",
		ResumeURL: "",
		SocialLinks: SocialLinks{
			Github:   "https://github.com/Syed-faiz05",
			Linkedin: "https://www.linkedin.com/in/syed-faiz-547a2a2a4/",
			Leetcode: "https://leetcode.com/u/Syed_Faiz05/",
			Email:    "syedfaiz052005@gmail.com",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
