package service

import (
	"context"
	"errors"
	"testing"

	"ctchen222/Movie-Catalog/internal/api/models"
	"ctchen222/Movie-Catalog/internal/api/repository"
	"ctchen222/Movie-Catalog/internal/api/repository/mocks"
	"ctchen222/Movie-Catalog/internal/auth"
	"ctchen222/Movie-Catalog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	return auth.NewTokenManager(&config.Config{
		SecretKey:                "test-secret",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 15,
	})
}

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	tokens := testTokens(t)
	svc := NewAuthService(userRepo, tokens)

	userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) error {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "a@x.com", user.Email)
			assert.NotEqual(t, "pw123", user.HashedPassword, "password must be hashed before persisting")
			assert.True(t, auth.VerifyPassword("pw123", user.HashedPassword))
			user.ID = 1
			return nil
		})

	token, err := svc.Signup(context.Background(), &models.SignupRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123",
	})
	require.NoError(t, err)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestAuthService_SignupDuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, testTokens(t))

	userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1, Username: "alice"}, nil)

	_, err := svc.Signup(context.Background(), &models.SignupRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123",
	})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestAuthService_SignupLosesInsertRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, testTokens(t))

	// The pre-check sees no user, but a concurrent signup wins the insert.
	// The constraint violation must surface as the duplicate error, not as a
	// server error.
	userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateUsername)

	_, err := svc.Signup(context.Background(), &models.SignupRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123",
	})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestAuthService_LoginErrorsAreUniform(t *testing.T) {
	hashed, err := auth.HashPassword("right-password")
	require.NoError(t, err)

	tests := []struct {
		name string
		user *models.User
	}{
		{name: "unknown username", user: nil},
		{name: "wrong password", user: &models.User{ID: 1, Username: "alice", HashedPassword: hashed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			userRepo := mocks.NewMockUserRepository(ctrl)
			svc := NewAuthService(userRepo, testTokens(t))

			userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(tt.user, nil)

			_, err := svc.Login(context.Background(), &models.LoginRequest{
				Username: "alice",
				Password: "wrong-password",
			})
			// Both cases collapse into the same sentinel so responses cannot
			// reveal whether the account exists.
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_LoginSuccess(t *testing.T) {
	hashed, err := auth.HashPassword("pw123")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	tokens := testTokens(t)
	svc := NewAuthService(userRepo, tokens)

	userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.User{ID: 1, Username: "alice", HashedPassword: hashed}, nil)

	token, err := svc.Login(context.Background(), &models.LoginRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, testTokens(t))

	userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.User{ID: 1, Username: "alice"}, nil)
	user, err := svc.ResolveIdentity(context.Background(), "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, user.ID)

	userRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
	_, err = svc.ResolveIdentity(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthService_SignupStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, testTokens(t))

	storeErr := errors.New("disk full")
	userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, storeErr)

	_, err := svc.Signup(context.Background(), &models.SignupRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123",
	})
	assert.ErrorIs(t, err, storeErr)
}
