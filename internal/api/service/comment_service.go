package service

import (
	"context"

	"ctchen222/Movie-Catalog/internal/api/models"
	"ctchen222/Movie-Catalog/internal/api/repository"
)

// CommentService defines the interface for comment business logic.
type CommentService interface {
	Create(ctx context.Context, req *models.CommentRequest, userID int64) (*models.Comment, error)
	Reply(ctx context.Context, req *models.ReplyRequest, userID int64) (*models.Comment, error)
	List(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	movieRepo   repository.MovieRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, movieRepo repository.MovieRepository) CommentService {
	return &commentService{commentRepo: commentRepo, movieRepo: movieRepo}
}

// Create records a top-level comment on an existing movie.
func (s *commentService) Create(ctx context.Context, req *models.CommentRequest, userID int64) (*models.Comment, error) {
	movie, err := s.movieRepo.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}

	comment := &models.Comment{
		UserID:  userID,
		MovieID: req.MovieID,
		Comment: req.Comment,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Reply records a reply under an existing comment. The reply inherits the
// parent's movie so a thread can never span movies. Replies are one level of
// creation only; nothing here walks the tree.
func (s *commentService) Reply(ctx context.Context, req *models.ReplyRequest, userID int64) (*models.Comment, error) {
	parent, err := s.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrNotFound
	}

	reply := &models.Comment{
		UserID:   userID,
		MovieID:  parent.MovieID,
		Comment:  req.Comment,
		ParentID: &parent.ID,
	}
	if err := s.commentRepo.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *commentService) List(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error) {
	return s.commentRepo.List(ctx, filter)
}
