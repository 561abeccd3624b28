package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/platform/logger"
	"github.com/pulse-social/pulse-api/internal/store"
)

// CreatePostInput carries the client-writable fields for creating a
// post. There is deliberately no slot for the author or publication
// date; both are always server-assigned, so a client cannot smuggle
// them in.
type CreatePostInput struct {
	Text    string
	Image   *string
	GroupID *uuid.UUID
}

// UpdatePostInput carries the client-writable fields for updating a
// post. Only non-nil fields are applied; an omitted image or group
// keeps its stored value. Full and partial update differ only in
// which fields the handler requires, not in how they are applied.
type UpdatePostInput struct {
	Text    *string
	Image   *string
	GroupID *uuid.UUID
}

// PostService provides the post operations: list, retrieve, create,
// update, destroy. Mutations are permitted to the post's author only.
type PostService interface {
	// List retrieves a window of posts and the total post count.
	List(ctx context.Context, limit, offset int) ([]*domain.Post, int, error)

	// Get retrieves a single post by ID.
	// Returns store.ErrPostNotFound if the post does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// Create creates a post authored by the requester. The author and
	// publication date are server-assigned.
	Create(ctx context.Context, requesterID uuid.UUID, in CreatePostInput) (*domain.Post, error)

	// Update applies the input to the post's mutable fields.
	// Returns store.ErrPostNotFound if the post does not exist, or
	// domain.ErrNotOwner if the requester is not the author.
	Update(ctx context.Context, requesterID, postID uuid.UUID, in UpdatePostInput) (*domain.Post, error)

	// Delete removes the post.
	// Returns store.ErrPostNotFound if the post does not exist, or
	// domain.ErrNotOwner if the requester is not the author.
	Delete(ctx context.Context, requesterID, postID uuid.UUID) error
}

// postService implements PostService on top of a PostStore.
type postService struct {
	postStore store.PostStore
	userStore store.UserStore
	logger    *slog.Logger
}

// Ensure postService implements PostService
var _ PostService = (*postService)(nil)

// NewPostService creates a new PostService.
func NewPostService(postStore store.PostStore, userStore store.UserStore, logger *slog.Logger) PostService {
	if postStore == nil {
		panic("postStore cannot be nil")
	}
	if userStore == nil {
		panic("userStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &postService{
		postStore: postStore,
		userStore: userStore,
		logger:    logger.With(slog.String("component", "post_service")),
	}
}

// List implements PostService.List
func (s *postService) List(ctx context.Context, limit, offset int) ([]*domain.Post, int, error) {
	return s.postStore.List(ctx, limit, offset)
}

// Get implements PostService.Get
func (s *postService) Get(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return s.postStore.GetByID(ctx, id)
}

// Create implements PostService.Create
func (s *postService) Create(
	ctx context.Context,
	requesterID uuid.UUID,
	in CreatePostInput,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := domain.NewPost(requesterID, in.Text, in.Image, in.GroupID)
	if err != nil {
		log.Warn("invalid post data",
			slog.String("error", err.Error()),
			slog.String("requester_id", requesterID.String()))
		return nil, err
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		return nil, err
	}

	// The response serializes the author by username; fetch it so the
	// created representation matches a subsequent retrieve.
	requester, err := s.userStore.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	post.AuthorUsername = requester.Username

	return post, nil
}

// Update implements PostService.Update
func (s *postService) Update(
	ctx context.Context,
	requesterID, postID uuid.UUID,
	in UpdatePostInput,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeMutation(requesterID, post); err != nil {
		log.Warn("post update denied",
			slog.String("post_id", postID.String()),
			slog.String("requester_id", requesterID.String()))
		return nil, err
	}

	if in.Text != nil {
		post.Text = *in.Text
	}
	if in.Image != nil {
		post.Image = in.Image
	}
	if in.GroupID != nil {
		post.GroupID = in.GroupID
	}

	if err := s.postStore.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Delete implements PostService.Delete
func (s *postService) Delete(ctx context.Context, requesterID, postID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := AuthorizeMutation(requesterID, post); err != nil {
		log.Warn("post delete denied",
			slog.String("post_id", postID.String()),
			slog.String("requester_id", requesterID.String()))
		return err
	}

	return s.postStore.Delete(ctx, postID)
}
