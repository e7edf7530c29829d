package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ctchen222/Movie-Catalog/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// MovieRepository defines the interface for movie data operations.
type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	List(ctx context.Context, skip, limit int) ([]models.Movie, error)
	Update(ctx context.Context, movie *models.Movie) (bool, error)
	DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error)
}

type sqliteMovieRepository struct {
	db *sqlx.DB
}

// NewMovieRepository creates a new SQLite-based MovieRepository.
func NewMovieRepository(db *sqlx.DB) MovieRepository {
	return &sqliteMovieRepository{db: db}
}

func (r *sqliteMovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, span := tracer.Start(ctx, "MovieRepository.Create")
	defer span.End()

	query := `INSERT INTO movies (title, author, release_date, created_by) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, movie.Title, movie.Author, movie.ReleaseDate, movie.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new movie id: %w", err)
	}
	movie.ID = id
	return nil
}

// GetByID returns (nil, nil) when no movie has the given id.
func (r *sqliteMovieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	ctx, span := tracer.Start(ctx, "MovieRepository.GetByID")
	defer span.End()

	var movie models.Movie
	query := `SELECT id, title, author, release_date, created_by FROM movies WHERE id = ?`
	if err := r.db.GetContext(ctx, &movie, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return &movie, nil
}

func (r *sqliteMovieRepository) List(ctx context.Context, skip, limit int) ([]models.Movie, error) {
	ctx, span := tracer.Start(ctx, "MovieRepository.List")
	defer span.End()

	movies := []models.Movie{}
	query := `SELECT id, title, author, release_date, created_by FROM movies ORDER BY id LIMIT ? OFFSET ?`
	if err := r.db.SelectContext(ctx, &movies, query, limit, skip); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

// Update overwrites the mutable fields of a movie and reports whether a row
// was actually updated.
func (r *sqliteMovieRepository) Update(ctx context.Context, movie *models.Movie) (bool, error) {
	ctx, span := tracer.Start(ctx, "MovieRepository.Update")
	defer span.End()

	query := `UPDATE movies SET title = ?, author = ?, release_date = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, movie.Title, movie.Author, movie.ReleaseDate, movie.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update movie: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows > 0, nil
}

// DeleteOwned deletes a movie only when it belongs to ownerID. Reports false
// both for a missing movie and for one owned by somebody else, so callers
// cannot tell the two apart.
func (r *sqliteMovieRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	ctx, span := tracer.Start(ctx, "MovieRepository.DeleteOwned")
	defer span.End()

	query := `DELETE FROM movies WHERE id = ? AND created_by = ?`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete movie: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows > 0, nil
}
