package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a tracked account and owns its exercise log.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Exercises []Exercise         `bson:"exercises" json:"exercises,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Exercise is a single logged activity embedded under a User.
// Entries have no identity of their own: they are only ever appended, and the
// sequence is persisted together with the owning user document.
type Exercise struct {
	Description string   `bson:"description,omitempty" json:"description"`
	Duration    Duration `bson:"duration" json:"duration"`
	Date        string   `bson:"date" json:"date"`
}
