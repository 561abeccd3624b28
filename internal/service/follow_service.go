package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/platform/logger"
	"github.com/pulse-social/pulse-api/internal/store"
)

// FollowService provides the follow-edge operations: list the
// requester's edges and create a new one. There is no update
// operation; a follow edge has no mutable state.
type FollowService interface {
	// List retrieves the requester's follow edges, optionally filtered
	// by a substring match over the followed username.
	List(ctx context.Context, requesterID uuid.UUID, search string) ([]*domain.Follow, error)

	// Create creates a follow edge from the requester to the user with
	// the given username. The follower is always the requester; the
	// payload has no slot for it.
	// Returns ErrFollowingNotFound if the username does not resolve,
	// domain.ErrSelfFollow if the requester targets themselves, or
	// ErrAlreadyFollowing if the edge already exists. All checks run
	// before the insert, and the check-then-insert sequence executes in
	// a single transaction backed by a unique constraint.
	Create(ctx context.Context, requesterID uuid.UUID, followingUsername string) (*domain.Follow, error)
}

// followService implements FollowService.
type followService struct {
	db          *sql.DB
	followStore store.FollowStore
	userStore   store.UserStore
	logger      *slog.Logger
}

// Ensure followService implements FollowService
var _ FollowService = (*followService)(nil)

// NewFollowService creates a new FollowService. The database handle is
// used to run the duplicate check and insert atomically.
func NewFollowService(
	db *sql.DB,
	followStore store.FollowStore,
	userStore store.UserStore,
	logger *slog.Logger,
) FollowService {
	if db == nil {
		panic("db cannot be nil")
	}
	if followStore == nil {
		panic("followStore cannot be nil")
	}
	if userStore == nil {
		panic("userStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &followService{
		db:          db,
		followStore: followStore,
		userStore:   userStore,
		logger:      logger.With(slog.String("component", "follow_service")),
	}
}

// List implements FollowService.List
func (s *followService) List(
	ctx context.Context,
	requesterID uuid.UUID,
	search string,
) ([]*domain.Follow, error) {
	return s.followStore.ListByUser(ctx, requesterID, search)
}

// Create implements FollowService.Create
func (s *followService) Create(
	ctx context.Context,
	requesterID uuid.UUID,
	followingUsername string,
) (*domain.Follow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	following, err := s.userStore.GetByUsername(ctx, followingUsername)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("follow target not found",
				slog.String("following", followingUsername))
			return nil, ErrFollowingNotFound
		}
		return nil, err
	}

	if following.ID == requesterID {
		log.Debug("self-follow rejected",
			slog.String("requester_id", requesterID.String()))
		return nil, domain.ErrSelfFollow
	}

	requester, err := s.userStore.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	follow, err := domain.NewFollow(requesterID, following.ID)
	if err != nil {
		return nil, err
	}
	follow.UserUsername = requester.Username
	follow.FollowingUsername = following.Username

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.followStore.WithTx(tx)

		exists, err := txStore.Exists(ctx, requesterID, following.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyFollowing
		}

		return txStore.Create(ctx, follow)
	})
	if err != nil {
		// Concurrent creates can slip past the pre-check and hit the
		// unique constraint instead; report both the same way.
		if errors.Is(err, store.ErrFollowExists) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}

	return follow, nil
}
