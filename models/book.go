package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is a published story in the catalog. Drafts live in the same
// collection but are excluded at the query layer, so this type never
// carries a draft through the rest of the server.
type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug          string             `bson:"slug" json:"slug"`
	Title         string             `bson:"title" json:"title"`
	Author        string             `bson:"author" json:"author"`
	Category      string             `bson:"category" json:"category"`
	Content       string             `bson:"content" json:"content"` // marked-up story body, rendered as-is
	CoverImageURL string             `bson:"coverImageUrl,omitempty" json:"coverImageUrl,omitempty"`
	TotalRead     int64              `bson:"totalRead" json:"totalRead"`
	IsDraft       bool               `bson:"isDraft" json:"-"`
	// CreatedAt may be momentarily absent between a write and server
	// materialization; the zero value sorts as oldest.
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
}
