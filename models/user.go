package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Achievement is embedded in the owning user document; it has no
// identity of its own outside the parent.
type Achievement struct {
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time `bson:"date" json:"date"`
}

// User is a registered alumni account and its profile attributes.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password,omitempty" json:"-"`
	Batch          string             `bson:"batch,omitempty" json:"batch,omitempty"`
	Branch         string             `bson:"branch,omitempty" json:"branch,omitempty"`
	JobTitle       string             `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	GraduationYear int                `bson:"graduationYear,omitempty" json:"graduationYear,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Tags           []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Achievements   []Achievement      `bson:"achievements" json:"achievements"`
	IsVerified     bool               `bson:"isVerified" json:"isVerified"`
	LinkedinURL    string             `bson:"linkedinUrl,omitempty" json:"linkedinUrl,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
