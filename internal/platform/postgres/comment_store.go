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

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend. Every lookup is
// scoped by the parent post ID so comment IDs never resolve across
// post boundaries.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of
// the CommentStore interface.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// Create implements store.CommentStore.Create
// Returns store.ErrInvalidEntity if the parent post does not exist.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return err
	}

	query := `
		INSERT INTO comments (id, author_id, post_id, text, created)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		comment.ID,
		comment.AuthorID,
		comment.PostID,
		comment.Text,
		comment.Created,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.String("error", err.Error()),
				slog.String("comment_id", comment.ID.String()),
				slog.String("post_id", comment.PostID.String()))
			return fmt.Errorf("%w: post with ID %s not found",
				store.ErrInvalidEntity, comment.PostID)
		}

		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()),
			slog.String("post_id", comment.PostID.String()))
		return mapError(err)
	}

	log.Info("comment created successfully",
		slog.String("comment_id", comment.ID.String()),
		slog.String("post_id", comment.PostID.String()),
		slog.String("author_id", comment.AuthorID.String()))
	return nil
}

// GetByID implements store.CommentStore.GetByID
// Returns store.ErrCommentNotFound if no comment with the given ID
// exists under the given post.
func (s *PostgresCommentStore) GetByID(ctx context.Context, postID, id uuid.UUID) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT c.id, c.author_id, c.post_id, c.text, c.created, u.username
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1 AND c.id = $2
	`

	var comment domain.Comment
	err := s.db.QueryRowContext(ctx, query, postID, id).Scan(
		&comment.ID,
		&comment.AuthorID,
		&comment.PostID,
		&comment.Text,
		&comment.Created,
		&comment.AuthorUsername,
	)

	if err != nil {
		if errors.Is(mapError(err), store.ErrNotFound) {
			log.Debug("comment not found",
				slog.String("post_id", postID.String()),
				slog.String("comment_id", id.String()))
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to get comment by ID",
			slog.String("error", err.Error()),
			slog.String("comment_id", id.String()))
		return nil, mapError(err)
	}

	return &comment, nil
}

// ListByPost implements store.CommentStore.ListByPost
// Comments are returned newest-first.
func (s *PostgresCommentStore) ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT c.id, c.author_id, c.post_id, c.text, c.created, u.username
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created DESC, c.id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, postID)
	if err != nil {
		log.Error("failed to list comments",
			slog.String("error", err.Error()),
			slog.String("post_id", postID.String()))
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.AuthorID,
			&comment.PostID,
			&comment.Text,
			&comment.Created,
			&comment.AuthorUsername,
		); err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return comments, nil
}

// Update implements store.CommentStore.Update
// Only the text column is written; author, post and creation time are
// never touched.
func (s *PostgresCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during update",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return err
	}

	query := `
		UPDATE comments
		SET text = $3
		WHERE post_id = $1 AND id = $2
	`
	result, err := s.db.ExecContext(ctx, query, comment.PostID, comment.ID, comment.Text)
	if err != nil {
		log.Error("failed to update comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		log.Debug("comment not found during update",
			slog.String("post_id", comment.PostID.String()),
			slog.String("comment_id", comment.ID.String()))
		return store.ErrCommentNotFound
	}

	log.Info("comment updated successfully",
		slog.String("comment_id", comment.ID.String()))
	return nil
}

// Delete implements store.CommentStore.Delete
// Returns store.ErrCommentNotFound if no comment with the given ID
// exists under the given post.
func (s *PostgresCommentStore) Delete(ctx context.Context, postID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM comments WHERE post_id = $1 AND id = $2`,
		postID,
		id,
	)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", id.String()))
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		log.Debug("comment not found during delete",
			slog.String("post_id", postID.String()),
			slog.String("comment_id", id.String()))
		return store.ErrCommentNotFound
	}

	log.Info("comment deleted successfully",
		slog.String("comment_id", id.String()))
	return nil
}
