package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a visitor-submitted contact form entry. Immutable after
// creation except for the read/starred flags.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Read      bool               `bson:"read" json:"read"`
	Starred   bool               `bson:"starred" json:"starred"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
