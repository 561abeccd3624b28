package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/service"
)

// MockPostService implements service.PostService for handler tests.
type MockPostService struct {
	ListFn   func(ctx context.Context, limit, offset int) ([]*domain.Post, int, error)
	GetFn    func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	CreateFn func(ctx context.Context, requesterID uuid.UUID, in service.CreatePostInput) (*domain.Post, error)
	UpdateFn func(ctx context.Context, requesterID, postID uuid.UUID, in service.UpdatePostInput) (*domain.Post, error)
	DeleteFn func(ctx context.Context, requesterID, postID uuid.UUID) error
}

func (m *MockPostService) List(ctx context.Context, limit, offset int) ([]*domain.Post, int, error) {
	return m.ListFn(ctx, limit, offset)
}

func (m *MockPostService) Get(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return m.GetFn(ctx, id)
}

func (m *MockPostService) Create(
	ctx context.Context,
	requesterID uuid.UUID,
	in service.CreatePostInput,
) (*domain.Post, error) {
	return m.CreateFn(ctx, requesterID, in)
}

func (m *MockPostService) Update(
	ctx context.Context,
	requesterID, postID uuid.UUID,
	in service.UpdatePostInput,
) (*domain.Post, error) {
	return m.UpdateFn(ctx, requesterID, postID, in)
}

func (m *MockPostService) Delete(ctx context.Context, requesterID, postID uuid.UUID) error {
	return m.DeleteFn(ctx, requesterID, postID)
}

// MockCommentService implements service.CommentService for handler tests.
type MockCommentService struct {
	ListFn   func(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)
	GetFn    func(ctx context.Context, postID, commentID uuid.UUID) (*domain.Comment, error)
	CreateFn func(ctx context.Context, requesterID, postID uuid.UUID, text string) (*domain.Comment, error)
	UpdateFn func(ctx context.Context, requesterID, postID, commentID uuid.UUID, text *string) (*domain.Comment, error)
	DeleteFn func(ctx context.Context, requesterID, postID, commentID uuid.UUID) error
}

func (m *MockCommentService) List(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	return m.ListFn(ctx, postID)
}

func (m *MockCommentService) Get(
	ctx context.Context,
	postID, commentID uuid.UUID,
) (*domain.Comment, error) {
	return m.GetFn(ctx, postID, commentID)
}

func (m *MockCommentService) Create(
	ctx context.Context,
	requesterID, postID uuid.UUID,
	text string,
) (*domain.Comment, error) {
	return m.CreateFn(ctx, requesterID, postID, text)
}

func (m *MockCommentService) Update(
	ctx context.Context,
	requesterID, postID, commentID uuid.UUID,
	text *string,
) (*domain.Comment, error) {
	return m.UpdateFn(ctx, requesterID, postID, commentID, text)
}

func (m *MockCommentService) Delete(
	ctx context.Context,
	requesterID, postID, commentID uuid.UUID,
) error {
	return m.DeleteFn(ctx, requesterID, postID, commentID)
}

// MockGroupService implements service.GroupService for handler tests.
type MockGroupService struct {
	ListFn func(ctx context.Context) ([]*domain.Group, error)
	GetFn  func(ctx context.Context, id uuid.UUID) (*domain.Group, error)
}

func (m *MockGroupService) List(ctx context.Context) ([]*domain.Group, error) {
	return m.ListFn(ctx)
}

func (m *MockGroupService) Get(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	return m.GetFn(ctx, id)
}

// MockFollowService implements service.FollowService for handler tests.
type MockFollowService struct {
	ListFn   func(ctx context.Context, requesterID uuid.UUID, search string) ([]*domain.Follow, error)
	CreateFn func(ctx context.Context, requesterID uuid.UUID, followingUsername string) (*domain.Follow, error)
}

func (m *MockFollowService) List(
	ctx context.Context,
	requesterID uuid.UUID,
	search string,
) ([]*domain.Follow, error) {
	return m.ListFn(ctx, requesterID, search)
}

func (m *MockFollowService) Create(
	ctx context.Context,
	requesterID uuid.UUID,
	followingUsername string,
) (*domain.Follow, error) {
	return m.CreateFn(ctx, requesterID, followingUsername)
}
