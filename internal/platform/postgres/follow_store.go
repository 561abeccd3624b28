package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/platform/logger"
	"github.com/pulse-social/pulse-api/internal/store"
)

// likeEscaper escapes the pattern metacharacters so a search term
// only ever matches literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// PostgresFollowStore implements the store.FollowStore interface
// using a PostgreSQL database as the storage backend. The follows
// table carries a unique (user_id, following_id) constraint, so even
// when two concurrent requests pass the duplicate pre-check only one
// insert can succeed.
type PostgresFollowStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFollowStore creates a new PostgreSQL implementation of
// the FollowStore interface.
func NewPostgresFollowStore(db store.DBTX, logger *slog.Logger) *PostgresFollowStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFollowStore{
		db:     db,
		logger: logger.With(slog.String("component", "follow_store")),
	}
}

// Ensure PostgresFollowStore implements store.FollowStore interface
var _ store.FollowStore = (*PostgresFollowStore)(nil)

// WithTx implements store.FollowStore.WithTx
func (s *PostgresFollowStore) WithTx(tx *sql.Tx) store.FollowStore {
	return &PostgresFollowStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.FollowStore.Create
// Returns store.ErrFollowExists if the (user, following) pair already exists.
func (s *PostgresFollowStore) Create(ctx context.Context, follow *domain.Follow) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := follow.Validate(); err != nil {
		log.Warn("follow validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", follow.UserID.String()))
		return err
	}

	query := `
		INSERT INTO follows (id, user_id, following_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		follow.ID,
		follow.UserID,
		follow.FollowingID,
		follow.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("follow edge already exists",
				slog.String("user_id", follow.UserID.String()),
				slog.String("following_id", follow.FollowingID.String()))
			return store.ErrFollowExists
		}

		log.Error("failed to create follow",
			slog.String("error", err.Error()),
			slog.String("user_id", follow.UserID.String()),
			slog.String("following_id", follow.FollowingID.String()))
		return mapError(err)
	}

	log.Info("follow created successfully",
		slog.String("user_id", follow.UserID.String()),
		slog.String("following_id", follow.FollowingID.String()))
	return nil
}

// Exists implements store.FollowStore.Exists
func (s *PostgresFollowStore) Exists(ctx context.Context, userID, followingID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE user_id = $1 AND following_id = $2)`,
		userID,
		followingID,
	).Scan(&exists)
	if err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

// ListByUser implements store.FollowStore.ListByUser
// Search is a case-insensitive substring match over the followed
// user's username.
func (s *PostgresFollowStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	search string,
) ([]*domain.Follow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT f.id, f.user_id, f.following_id, f.created_at,
		       follower.username, followed.username
		FROM follows f
		JOIN users follower ON follower.id = f.user_id
		JOIN users followed ON followed.id = f.following_id
		WHERE f.user_id = $1
		  AND ($2 = '' OR followed.username ILIKE '%' || $2 || '%')
		ORDER BY f.created_at, f.id
	`

	rows, err := s.db.QueryContext(ctx, query, userID, escapeLikePattern(search))
	if err != nil {
		log.Error("failed to list follows",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	follows := make([]*domain.Follow, 0)
	for rows.Next() {
		var follow domain.Follow
		if err := rows.Scan(
			&follow.ID,
			&follow.UserID,
			&follow.FollowingID,
			&follow.CreatedAt,
			&follow.UserUsername,
			&follow.FollowingUsername,
		); err != nil {
			log.Error("failed to scan follow row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		follows = append(follows, &follow)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return follows, nil
}
