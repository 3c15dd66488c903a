package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talespace/talespace-server/middleware"
	"github.com/talespace/talespace-server/store"
	"github.com/talespace/talespace-server/viewmodel"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentsHandler struct {
	DB *store.DB
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

// List returns a story's comment thread, newest first. Listing failure
// is a real error here, not an empty list.
func (h *CommentsHandler) List(w http.ResponseWriter, r *http.Request) {
	bookID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bookID"))
	if err != nil {
		http.Error(w, `{"error":"invalid story id"}`, http.StatusBadRequest)
		return
	}
	vm := viewmodel.NewComments(h.DB, middleware.SessionFromContext(r.Context()), bookID)
	if err := vm.Load(r.Context()); err != nil {
		http.Error(w, `{"error":"failed to load comments"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vm.Comments())
}

// Count returns the number of non-deleted comments for a story.
func (h *CommentsHandler) Count(w http.ResponseWriter, r *http.Request) {
	bookID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bookID"))
	if err != nil {
		http.Error(w, `{"error":"invalid story id"}`, http.StatusBadRequest)
		return
	}
	count, err := h.DB.CommentCount(r.Context(), bookID)
	if err != nil {
		http.Error(w, `{"error":"failed to count comments"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"count": count})
}

// Create posts a comment as the authenticated session and returns the
// re-listed thread.
func (h *CommentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	bookID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bookID"))
	if err != nil {
		http.Error(w, `{"error":"invalid story id"}`, http.StatusBadRequest)
		return
	}
	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}

	vm := viewmodel.NewComments(h.DB, middleware.SessionFromContext(r.Context()), bookID)
	if err := vm.Submit(r.Context(), req.Content); err != nil {
		writeCommentError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(vm.Comments())
}

// Delete soft-deletes the session's own comment. The bookID in the path
// scopes the thread that gets re-listed in the response.
func (h *CommentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bookID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bookID"))
	if err != nil {
		http.Error(w, `{"error":"invalid story id"}`, http.StatusBadRequest)
		return
	}
	commentID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "commentID"))
	if err != nil {
		http.Error(w, `{"error":"invalid comment id"}`, http.StatusBadRequest)
		return
	}

	vm := viewmodel.NewComments(h.DB, middleware.SessionFromContext(r.Context()), bookID)
	if err := vm.Delete(r.Context(), commentID); err != nil {
		writeCommentError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vm.Comments())
}

func writeCommentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, viewmodel.ErrSignInRequired):
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusUnauthorized)
	case errors.Is(err, viewmodel.ErrNotCommentOwner):
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusForbidden)
	case errors.Is(err, viewmodel.ErrCommentNotFound):
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusNotFound)
	case errors.Is(err, store.ErrEmptyContent), errors.Is(err, store.ErrContentTooLong):
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
	default:
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
	}
}
