package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visitor is one logged page view. Append-only; nothing in the running
// system updates or deletes these.
type Visitor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IP        string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	Path      string             `bson:"path,omitempty" json:"path,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
