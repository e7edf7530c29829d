package service

import (
	"context"
	"testing"

	"ctchen222/Movie-Catalog/internal/api/models"
	"ctchen222/Movie-Catalog/internal/api/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMovieService_CreateSetsCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	movieRepo := mocks.NewMockMovieRepository(ctrl)
	svc := NewMovieService(movieRepo)

	movieRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, movie *models.Movie) error {
			assert.EqualValues(t, 7, movie.CreatedBy)
			movie.ID = 1
			return nil
		})

	movie, err := svc.Create(context.Background(), &models.MovieRequest{
		Title:       "Heat",
		Author:      "Michael Mann",
		ReleaseDate: "1995-12-15",
	}, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 1, movie.ID)
	assert.EqualValues(t, 7, movie.CreatedBy)
}

func TestMovieService_GetMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	movieRepo := mocks.NewMockMovieRepository(ctrl)
	svc := NewMovieService(movieRepo)

	movieRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMovieService_UpdateIgnoresOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	movieRepo := mocks.NewMockMovieRepository(ctrl)
	svc := NewMovieService(movieRepo)

	existing := &models.Movie{ID: 1, Title: "Old", Author: "Someone", ReleaseDate: "2000-01-01", CreatedBy: 42}
	movieRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil)
	movieRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, movie *models.Movie) (bool, error) {
			// Update goes through regardless of who created the row and the
			// creator is never overwritten.
			assert.EqualValues(t, 42, movie.CreatedBy)
			assert.Equal(t, "New", movie.Title)
			return true, nil
		})

	movie, err := svc.Update(context.Background(), 1, &models.MovieRequest{
		Title:       "New",
		Author:      "Someone Else",
		ReleaseDate: "2001-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", movie.Title)
}

func TestMovieService_DeleteNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	movieRepo := mocks.NewMockMovieRepository(ctrl)
	svc := NewMovieService(movieRepo)

	existing := &models.Movie{ID: 1, Title: "Heat", CreatedBy: 42}
	movieRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil)

	movie, err := svc.Delete(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, movie)
}

func TestMovieService_DeleteOwnedReturnsMovie(t *testing.T) {
	ctrl := gomock.NewController(t)
	movieRepo := mocks.NewMockMovieRepository(ctrl)
	svc := NewMovieService(movieRepo)

	existing := &models.Movie{ID: 1, Title: "Heat", Author: "Michael Mann", ReleaseDate: "1995-12-15", CreatedBy: 42}
	movieRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil)
	movieRepo.EXPECT().DeleteOwned(gomock.Any(), int64(1), int64(42)).Return(true, nil)

	movie, err := svc.Delete(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, existing, movie)
}
