package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/talespace/talespace-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Unlike catalog reads, every comment operation surfaces its error: a
// reader who just hit "post" must see that the submission failed.

var (
	ErrEmptyContent   = errors.New("comment content is empty")
	ErrContentTooLong = errors.New("comment content exceeds 500 characters")
)

// AddComment creates a comment for a book. Content is trimmed and
// validated before any store call; createdAt is stamped here and
// isDeleted starts false. Returns the new comment's id.
func (db *DB) AddComment(ctx context.Context, bookID, userID primitive.ObjectID, userName, content string) (primitive.ObjectID, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return primitive.NilObjectID, ErrEmptyContent
	}
	if len([]rune(content)) > models.MaxCommentLength {
		return primitive.NilObjectID, ErrContentTooLong
	}
	comment := models.Comment{
		BookID:    bookID,
		UserID:    userID,
		UserName:  userName,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		IsDeleted: false,
	}
	res, err := db.Comments().InsertOne(ctx, comment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// CommentsByBook returns the book's non-deleted comments, most recent
// first. A failed query returns an error, never a silent empty list.
func (db *DB) CommentsByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.Comment, error) {
	cur, err := db.Comments().Find(ctx,
		bson.M{"bookId": bookID, "isDeleted": false},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var comments []models.Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// CommentByID returns the comment regardless of deletion state, or nil
// if none exists. Used by callers for the ownership check before delete.
func (db *DB) CommentByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var c models.Comment
	err := db.Comments().FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteComment soft-deletes: the document stays, flagged isDeleted, so
// listings and counts stop returning it. Ownership is the caller's gate;
// this method does not re-check authorship.
func (db *DB) DeleteComment(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.Comments().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isDeleted": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CommentCount returns the number of non-deleted comments for a book.
func (db *DB) CommentCount(ctx context.Context, bookID primitive.ObjectID) (int64, error) {
	return db.Comments().CountDocuments(ctx, bson.M{"bookId": bookID, "isDeleted": false})
}
