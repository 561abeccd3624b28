package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/platform/logger"
	"github.com/pulse-social/pulse-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// Returns store.ErrInvalidEntity if the referenced group does not exist.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	query := `
		INSERT INTO posts (id, author_id, text, pub_date, image, group_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.AuthorID,
		post.Text,
		post.PubDate,
		post.Image,
		post.GroupID,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.String("error", err.Error()),
				slog.String("post_id", post.ID.String()))
			return fmt.Errorf("%w: referenced row not found", store.ErrInvalidEntity)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()),
			slog.String("author_id", post.AuthorID.String()))
		return mapError(err)
	}

	log.Info("post created successfully",
		slog.String("post_id", post.ID.String()),
		slog.String("author_id", post.AuthorID.String()))
	return nil
}

// GetByID implements store.PostStore.GetByID
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT p.id, p.author_id, p.text, p.pub_date, p.image, p.group_id, u.username
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Text,
		&post.PubDate,
		&post.Image,
		&post.GroupID,
		&post.AuthorUsername,
	)

	if err != nil {
		if errors.Is(mapError(err), store.ErrNotFound) {
			log.Debug("post not found", slog.String("post_id", id.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, mapError(err)
	}

	return &post, nil
}

// List implements store.PostStore.List
// Posts are ordered by publication date then ID, matching insertion order.
func (s *PostgresPostStore) List(ctx context.Context, limit, offset int) ([]*domain.Post, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		log.Error("failed to count posts", slog.String("error", err.Error()))
		return nil, 0, mapError(err)
	}

	query := `
		SELECT p.id, p.author_id, p.text, p.pub_date, p.image, p.group_id, u.username
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.pub_date, p.id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, 0, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Text,
			&post.PubDate,
			&post.Image,
			&post.GroupID,
			&post.AuthorUsername,
		); err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, 0, mapError(err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}

	return posts, count, nil
}

// Update implements store.PostStore.Update
// Only the mutable fields (text, image, group) are written; the author
// and publication date columns are never touched.
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during update",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	query := `
		UPDATE posts
		SET text = $2, image = $3, group_id = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, post.ID, post.Text, post.Image, post.GroupID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: referenced row not found", store.ErrInvalidEntity)
		}
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		log.Debug("post not found during update", slog.String("post_id", post.ID.String()))
		return store.ErrPostNotFound
	}

	log.Info("post updated successfully", slog.String("post_id", post.ID.String()))
	return nil
}

// Delete implements store.PostStore.Delete
// Returns store.ErrPostNotFound if the post does not exist. Comments
// under the post are removed by the ON DELETE CASCADE constraint.
func (s *PostgresPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		log.Debug("post not found during delete", slog.String("post_id", id.String()))
		return store.ErrPostNotFound
	}

	log.Info("post deleted successfully", slog.String("post_id", id.String()))
	return nil
}

// Exists implements store.PostStore.Exists
func (s *PostgresPostStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, mapError(err)
	}
	return exists, nil
}
