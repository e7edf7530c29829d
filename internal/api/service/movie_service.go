package service

import (
	"context"

	"ctchen222/Movie-Catalog/internal/api/models"
	"ctchen222/Movie-Catalog/internal/api/repository"
)

// MovieService defines the interface for movie business logic.
type MovieService interface {
	Create(ctx context.Context, req *models.MovieRequest, creatorID int64) (*models.Movie, error)
	Get(ctx context.Context, id int64) (*models.Movie, error)
	List(ctx context.Context, skip, limit int) ([]models.Movie, error)
	Update(ctx context.Context, id int64, req *models.MovieRequest) (*models.Movie, error)
	Delete(ctx context.Context, id, requesterID int64) (*models.Movie, error)
}

type movieService struct {
	movieRepo repository.MovieRepository
}

// NewMovieService creates a new MovieService.
func NewMovieService(movieRepo repository.MovieRepository) MovieService {
	return &movieService{movieRepo: movieRepo}
}

func (s *movieService) Create(ctx context.Context, req *models.MovieRequest, creatorID int64) (*models.Movie, error) {
	movie := &models.Movie{
		Title:       req.Title,
		Author:      req.Author,
		ReleaseDate: req.ReleaseDate,
		CreatedBy:   creatorID,
	}
	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Get(ctx context.Context, id int64) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	return movie, nil
}

func (s *movieService) List(ctx context.Context, skip, limit int) ([]models.Movie, error) {
	return s.movieRepo.List(ctx, skip, limit)
}

// Update overwrites a movie's fields. Any authenticated user may update any
// movie; only deletion is restricted to the owner.
func (s *movieService) Update(ctx context.Context, id int64, req *models.MovieRequest) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}

	movie.Title = req.Title
	movie.Author = req.Author
	movie.ReleaseDate = req.ReleaseDate

	updated, err := s.movieRepo.Update(ctx, movie)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrNotFound
	}
	return movie, nil
}

// Delete removes a movie owned by the requester and returns the removed row.
// A movie that does not exist and a movie owned by another user both come
// back as ErrNotFound.
func (s *movieService) Delete(ctx context.Context, id, requesterID int64) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil || movie.CreatedBy != requesterID {
		return nil, ErrNotFound
	}

	deleted, err := s.movieRepo.DeleteOwned(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, ErrNotFound
	}
	return movie, nil
}
