package viewmodel

import (
	"context"
	"errors"

	"github.com/talespace/talespace-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrSignInRequired  = errors.New("sign in to comment")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("only the comment's author can delete it")
)

// Comments is the slice of the comment store the thread view model
// needs. All operations surface their errors.
type Comments interface {
	CommentsByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.Comment, error)
	AddComment(ctx context.Context, bookID, userID primitive.ObjectID, userName, content string) (primitive.ObjectID, error)
	CommentByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	DeleteComment(ctx context.Context, id primitive.ObjectID) error
}

// CommentViewModel drives one story's comment thread. The displayed
// list is always the materialization of the last successful listing:
// submit and delete never mutate it locally, they re-list on success so
// server-assigned fields come back with the new state.
type CommentViewModel struct {
	store    Comments
	session  *models.Session
	bookID   primitive.ObjectID
	state    State
	comments []models.Comment
}

// NewComments builds a thread view model for one book. session may be
// nil for an unauthenticated reader, which gates Submit and Delete.
func NewComments(store Comments, session *models.Session, bookID primitive.ObjectID) *CommentViewModel {
	return &CommentViewModel{store: store, session: session, bookID: bookID, state: StateIdle}
}

func (vm *CommentViewModel) State() State { return vm.state }

// Comments returns the last successfully listed thread, newest first.
func (vm *CommentViewModel) Comments() []models.Comment {
	if vm.comments == nil {
		return []models.Comment{}
	}
	return vm.comments
}

// Load lists the thread. On failure the error is surfaced and the last
// successful list is kept, so callers can distinguish "no comments"
// from "listing failed" without losing what they already showed.
func (vm *CommentViewModel) Load(ctx context.Context) error {
	vm.state = StateLoading
	comments, err := vm.store.CommentsByBook(ctx, vm.bookID)
	vm.state = StateReady
	if err != nil {
		return err
	}
	vm.comments = comments
	return nil
}

// Submit posts a comment as the current session and re-lists the thread
// on success. Validation of the content itself (empty after trim, too
// long) happens in the store before any network call.
func (vm *CommentViewModel) Submit(ctx context.Context, content string) error {
	if vm.session == nil {
		return ErrSignInRequired
	}
	_, err := vm.store.AddComment(ctx, vm.bookID, vm.session.UserID, vm.session.DisplayName, content)
	if err != nil {
		return err
	}
	return vm.Load(ctx)
}

// Delete removes the session's own comment after the ownership check
// and re-lists the thread on success. The confirmation step lives in
// the frontend; reaching this call is the confirmed action.
func (vm *CommentViewModel) Delete(ctx context.Context, commentID primitive.ObjectID) error {
	if vm.session == nil {
		return ErrSignInRequired
	}
	comment, err := vm.store.CommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || comment.IsDeleted {
		return ErrCommentNotFound
	}
	if comment.UserID != vm.session.UserID {
		return ErrNotCommentOwner
	}
	if err := vm.store.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	return vm.Load(ctx)
}
