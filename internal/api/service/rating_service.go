package service

import (
	"context"

	"ctchen222/Movie-Catalog/internal/api/models"
	"ctchen222/Movie-Catalog/internal/api/repository"
)

// RatingService defines the interface for rating business logic.
type RatingService interface {
	Create(ctx context.Context, req *models.RatingRequest, userID int64) (*models.Rating, error)
	List(ctx context.Context, filter models.RatingFilter) ([]models.Rating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	movieRepo  repository.MovieRepository
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratingRepo repository.RatingRepository, movieRepo repository.MovieRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo, movieRepo: movieRepo}
}

// Create records a rating for an existing movie.
func (s *ratingService) Create(ctx context.Context, req *models.RatingRequest, userID int64) (*models.Rating, error) {
	movie, err := s.movieRepo.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}

	rating := &models.Rating{
		UserID:  userID,
		MovieID: req.MovieID,
		Rating:  *req.Rating,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) List(ctx context.Context, filter models.RatingFilter) ([]models.Rating, error) {
	return s.ratingRepo.List(ctx, filter)
}
