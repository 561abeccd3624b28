package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/store"
)

// GroupService provides read-only access to groups. There is no
// create/update/delete surface: groups are provisioned out-of-band and
// the HTTP layer answers 405 for any attempt to write.
type GroupService interface {
	// List retrieves all groups.
	List(ctx context.Context) ([]*domain.Group, error)

	// Get retrieves a single group by ID.
	// Returns store.ErrGroupNotFound if the group does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Group, error)
}

// groupService implements GroupService.
type groupService struct {
	groupStore store.GroupStore
	logger     *slog.Logger
}

// Ensure groupService implements GroupService
var _ GroupService = (*groupService)(nil)

// NewGroupService creates a new GroupService.
func NewGroupService(groupStore store.GroupStore, logger *slog.Logger) GroupService {
	if groupStore == nil {
		panic("groupStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &groupService{
		groupStore: groupStore,
		logger:     logger.With(slog.String("component", "group_service")),
	}
}

// List implements GroupService.List
func (s *groupService) List(ctx context.Context) ([]*domain.Group, error) {
	return s.groupStore.List(ctx)
}

// Get implements GroupService.Get
func (s *groupService) Get(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	return s.groupStore.GetByID(ctx, id)
}
