package store

import (
	"context"
	"log/slog"
	"strings"

	"github.com/talespace/talespace-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Catalog reads degrade to empty results on failure: a browsing page
// showing "no stories found" beats a hard error on this read-heavy
// path. Failures are logged, so true zero-results and a failed query
// look the same to callers. Comment writes do NOT share this policy.

// PublishedBooks returns all non-draft books, newest first. An empty
// slice on failure, never an error.
func (db *DB) PublishedBooks(ctx context.Context) []models.Book {
	books, err := db.findBooks(ctx, bson.M{"isDraft": false})
	if err != nil {
		slog.Warn("fetch published books", "err", err)
		return []models.Book{}
	}
	return books
}

// BooksByCategory returns non-draft books with an exact category match,
// newest first. The category is expected pre-normalized by the caller
// (hyphens already converted to spaces); no normalization happens here.
func (db *DB) BooksByCategory(ctx context.Context, category string) []models.Book {
	books, err := db.findBooks(ctx, bson.M{"isDraft": false, "category": category})
	if err != nil {
		slog.Warn("fetch books by category", "category", category, "err", err)
		return []models.Book{}
	}
	return books
}

// BookBySlug returns the non-draft book with the given slug, or nil if
// none exists. Should duplicate slugs ever occur, the earliest-published
// book wins: the query sorts ascending by createdAt and takes the first.
func (db *DB) BookBySlug(ctx context.Context, slug string) *models.Book {
	var book models.Book
	err := db.Books().FindOne(ctx,
		bson.M{"slug": slug, "isDraft": false},
		options.FindOne().SetSort(bson.M{"createdAt": 1}),
	).Decode(&book)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		slog.Warn("fetch book by slug", "slug", slug, "err", err)
		return nil
	}
	return &book
}

// IncrementTotalRead performs an atomic +1 on the book's read counter.
// Best-effort analytics: failure is logged, never surfaced, never
// retried, so the counter may under-count under transient failure.
func (db *DB) IncrementTotalRead(ctx context.Context, bookID primitive.ObjectID) {
	_, err := db.Books().UpdateOne(ctx,
		bson.M{"_id": bookID},
		bson.M{"$inc": bson.M{"totalRead": 1}},
	)
	if err != nil {
		slog.Warn("increment total read", "bookId", bookID.Hex(), "err", err)
	}
}

// SearchBooks fetches the full published set and keeps books whose
// title, content, or author contains the term case-insensitively.
// Results stay in the underlying newest-first order; there is no
// relevance ranking.
func (db *DB) SearchBooks(ctx context.Context, term string) []models.Book {
	books, err := db.findBooks(ctx, bson.M{"isDraft": false})
	if err != nil {
		slog.Warn("search books", "err", err)
		return []models.Book{}
	}
	term = strings.ToLower(term)
	matches := []models.Book{}
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), term) ||
			strings.Contains(strings.ToLower(b.Content), term) ||
			(b.Author != "" && strings.Contains(strings.ToLower(b.Author), term)) {
			matches = append(matches, b)
		}
	}
	return matches
}

func (db *DB) findBooks(ctx context.Context, filter bson.M) ([]models.Book, error) {
	cur, err := db.Books().Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var books []models.Book
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []models.Book{}
	}
	return books, nil
}
