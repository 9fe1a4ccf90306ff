package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	Commenter primitive.ObjectID `bson:"commenter" json:"commenter"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Post is a feed entry. Author is a non-owning reference; likes hold the
// accounts that liked the post, one entry per account.
type Post struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Author    primitive.ObjectID   `bson:"author" json:"author"`
	Content   string               `bson:"content" json:"content"`
	MediaURL  string               `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	Tags      []string             `bson:"tags,omitempty" json:"tags,omitempty"`
	Comments  []Comment            `bson:"comments" json:"comments"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}
