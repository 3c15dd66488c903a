package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/talespace/talespace-server/catalog"
	"github.com/talespace/talespace-server/store"
	"github.com/talespace/talespace-server/viewmodel"
)

type StoriesHandler struct {
	DB *store.DB
}

// List serves the catalog pages. One store fetch per request; search
// and sort are applied locally by the filter/sort engine. Query params:
// category (URL-style, hyphens become spaces), search, sort, limit.
func (h *StoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "all" {
		category = ""
	}
	// Category values arrive URL-style ("true-story"); the store does
	// no normalization, so it happens here at the presentation edge.
	category = strings.ReplaceAll(category, "-", " ")

	vm := viewmodel.NewCatalog(h.DB)
	if err := vm.Load(r.Context(), category); err != nil {
		http.Error(w, `{"error":"failed to load stories"}`, http.StatusInternalServerError)
		return
	}
	books := vm.Visible(
		r.URL.Query().Get("search"),
		catalog.ParseSortKey(r.URL.Query().Get("sort")),
	)
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit < len(books) {
		books = books[:limit]
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(books)
}

type StoryResponse struct {
	Book         any   `json:"book"`
	CommentCount int64 `json:"commentCount"`
}

// Get serves the reader page: resolve by slug, bump the read counter
// without blocking the response, return the story with its comment
// count.
func (h *StoriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	book := h.DB.BookBySlug(r.Context(), slug)
	if book == nil {
		http.Error(w, `{"error":"story not found"}`, http.StatusNotFound)
		return
	}

	// Fire-and-forget; rendering never waits on the counter.
	go h.DB.IncrementTotalRead(context.WithoutCancel(r.Context()), book.ID)

	count, err := h.DB.CommentCount(r.Context(), book.ID)
	if err != nil {
		// The story itself loaded; a missing count is not worth a 500.
		count = 0
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StoryResponse{Book: book, CommentCount: count})
}

// Search matches the term against title, content, and author of the
// published set, newest first.
func (h *StoriesHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		http.Error(w, `{"error":"query parameter q required"}`, http.StatusBadRequest)
		return
	}
	books := h.DB.SearchBooks(r.Context(), term)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(books)
}
