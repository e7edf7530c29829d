package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ctchen222/Movie-Catalog/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	List(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error)
}

type sqliteCommentRepository struct {
	db *sqlx.DB
}

// NewCommentRepository creates a new SQLite-based CommentRepository.
func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &sqliteCommentRepository{db: db}
}

func (r *sqliteCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	ctx, span := tracer.Start(ctx, "CommentRepository.Create")
	defer span.End()

	query := `INSERT INTO comments (user_id, movie_id, comment, parent_id) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, comment.UserID, comment.MovieID, comment.Comment, comment.ParentID)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new comment id: %w", err)
	}
	comment.ID = id
	return nil
}

// GetByID returns (nil, nil) when no comment has the given id.
func (r *sqliteCommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	ctx, span := tracer.Start(ctx, "CommentRepository.GetByID")
	defer span.End()

	var comment models.Comment
	query := `SELECT id, user_id, movie_id, comment, parent_id FROM comments WHERE id = ?`
	if err := r.db.GetContext(ctx, &comment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

// List returns comments matching the filter. Nil filter fields are ignored;
// set fields are ANDed together.
func (r *sqliteCommentRepository) List(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error) {
	ctx, span := tracer.Start(ctx, "CommentRepository.List")
	defer span.End()

	query := `SELECT id, user_id, movie_id, comment, parent_id FROM comments WHERE 1=1`
	args := []any{}
	if filter.UserID != nil {
		query += ` AND user_id = ?`
		args = append(args, *filter.UserID)
	}
	if filter.MovieID != nil {
		query += ` AND movie_id = ?`
		args = append(args, *filter.MovieID)
	}

	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
