package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/platform/logger"
	"github.com/pulse-social/pulse-api/internal/store"
)

// CommentService provides the comment operations, all scoped under a
// parent post identified in the request path. The parent post must
// exist for both list and create; a comment ID that belongs to a
// different post behaves like a missing comment so existence never
// leaks across posts.
type CommentService interface {
	// List retrieves all comments under the post, newest first.
	// Returns store.ErrPostNotFound if the post does not exist.
	List(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)

	// Get retrieves a comment by ID within the post's scope.
	// Returns store.ErrPostNotFound if the post does not exist, or
	// store.ErrCommentNotFound if no such comment exists under it.
	Get(ctx context.Context, postID, commentID uuid.UUID) (*domain.Comment, error)

	// Create creates a comment by the requester under the post. The
	// author and the parent post are server-assigned; the creation
	// time is set by the server.
	// Returns store.ErrPostNotFound if the post does not exist.
	Create(ctx context.Context, requesterID, postID uuid.UUID, text string) (*domain.Comment, error)

	// Update replaces the comment's text. A nil text (partial update
	// with no fields) leaves the comment unchanged but still runs the
	// ownership check.
	// Returns store.ErrCommentNotFound on a scope miss, or
	// domain.ErrNotOwner if the requester is not the author.
	Update(ctx context.Context, requesterID, postID, commentID uuid.UUID, text *string) (*domain.Comment, error)

	// Delete removes the comment.
	// Returns store.ErrCommentNotFound on a scope miss, or
	// domain.ErrNotOwner if the requester is not the author.
	Delete(ctx context.Context, requesterID, postID, commentID uuid.UUID) error
}

// commentService implements CommentService.
type commentService struct {
	commentStore store.CommentStore
	postStore    store.PostStore
	userStore    store.UserStore
	logger       *slog.Logger
}

// Ensure commentService implements CommentService
var _ CommentService = (*commentService)(nil)

// NewCommentService creates a new CommentService.
func NewCommentService(
	commentStore store.CommentStore,
	postStore store.PostStore,
	userStore store.UserStore,
	logger *slog.Logger,
) CommentService {
	if commentStore == nil {
		panic("commentStore cannot be nil")
	}
	if postStore == nil {
		panic("postStore cannot be nil")
	}
	if userStore == nil {
		panic("userStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &commentService{
		commentStore: commentStore,
		postStore:    postStore,
		userStore:    userStore,
		logger:       logger.With(slog.String("component", "comment_service")),
	}
}

// requirePost verifies that the parent post exists.
func (s *commentService) requirePost(ctx context.Context, postID uuid.UUID) error {
	exists, err := s.postStore.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrPostNotFound
	}
	return nil
}

// List implements CommentService.List
func (s *commentService) List(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentStore.ListByPost(ctx, postID)
}

// Get implements CommentService.Get
func (s *commentService) Get(ctx context.Context, postID, commentID uuid.UUID) (*domain.Comment, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentStore.GetByID(ctx, postID, commentID)
}

// Create implements CommentService.Create
func (s *commentService) Create(
	ctx context.Context,
	requesterID, postID uuid.UUID,
	text string,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := domain.NewComment(requesterID, postID, text)
	if err != nil {
		log.Warn("invalid comment data",
			slog.String("error", err.Error()),
			slog.String("requester_id", requesterID.String()),
			slog.String("post_id", postID.String()))
		return nil, err
	}

	if err := s.commentStore.Create(ctx, comment); err != nil {
		return nil, err
	}

	requester, err := s.userStore.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	comment.AuthorUsername = requester.Username

	return comment, nil
}

// Update implements CommentService.Update
func (s *commentService) Update(
	ctx context.Context,
	requesterID, postID, commentID uuid.UUID,
	text *string,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	comment, err := s.commentStore.GetByID(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeMutation(requesterID, comment); err != nil {
		log.Warn("comment update denied",
			slog.String("comment_id", commentID.String()),
			slog.String("requester_id", requesterID.String()))
		return nil, err
	}

	if text == nil {
		return comment, nil
	}

	comment.Text = *text
	if err := s.commentStore.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// Delete implements CommentService.Delete
func (s *commentService) Delete(ctx context.Context, requesterID, postID, commentID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	comment, err := s.commentStore.GetByID(ctx, postID, commentID)
	if err != nil {
		return err
	}

	if err := AuthorizeMutation(requesterID, comment); err != nil {
		log.Warn("comment delete denied",
			slog.String("comment_id", commentID.String()),
			slog.String("requester_id", requesterID.String()))
		return err
	}

	return s.commentStore.Delete(ctx, postID, commentID)
}
