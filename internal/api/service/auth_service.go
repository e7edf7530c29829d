package service

import (
	"context"
	"errors"
	"fmt"

	"ctchen222/Movie-Catalog/internal/api/models"
	"ctchen222/Movie-Catalog/internal/api/repository"
	"ctchen222/Movie-Catalog/internal/auth"
)

// AuthService defines the interface for signup, login and identity resolution.
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (string, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	ResolveIdentity(ctx context.Context, subject string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Signup registers a new user and returns an access token for it. The
// username pre-check is best effort; a concurrent signup losing the race
// surfaces as a UNIQUE violation, which the repository already translates.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (string, error) {
	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrDuplicateUsername
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return "", ErrDuplicateUsername
		case errors.Is(err, repository.ErrDuplicateEmail):
			return "", ErrDuplicateEmail
		}
		return "", err
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Login verifies the credentials and returns an access token. A missing user
// and a wrong password both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if user == nil || !auth.VerifyPassword(req.Password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// ResolveIdentity maps a verified token subject back to its user record.
// Returns ErrNotFound when the subject no longer names a live account.
func (s *authService) ResolveIdentity(ctx context.Context, subject string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
