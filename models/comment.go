package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxCommentLength is the limit on comment content after trimming.
const MaxCommentLength = 500

// Comment is a reader comment on a story. UserName is the author's
// display name captured at creation time; it does not follow later
// renames. Deleted comments stay in the collection with IsDeleted set
// and are filtered out of every listing and count.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookID    primitive.ObjectID `bson:"bookId" json:"bookId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName" json:"userName"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	IsDeleted bool               `bson:"isDeleted" json:"-"`
}
