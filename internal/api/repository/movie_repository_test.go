package repository

import (
	"context"
	"testing"

	"ctchen222/Movie-Catalog/internal/api/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieRepository(db)

	mock.ExpectExec("INSERT INTO movies").
		WithArgs("Heat", "Michael Mann", "1995-12-15", int64(7)).
		WillReturnResult(sqlmock.NewResult(3, 1))

	movie := &models.Movie{Title: "Heat", Author: "Michael Mann", ReleaseDate: "1995-12-15", CreatedBy: 7}
	require.NoError(t, repo.Create(context.Background(), movie))
	assert.EqualValues(t, 3, movie.ID)
}

func TestMovieRepository_GetByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery("SELECT id, title, author, release_date, created_by FROM movies").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author", "release_date", "created_by"}))

	movie, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, movie)
}

func TestMovieRepository_ListPagination(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "author", "release_date", "created_by"}).
		AddRow(3, "Heat", "Michael Mann", "1995-12-15", 7).
		AddRow(4, "Ronin", "John Frankenheimer", "1998-09-25", 7)
	mock.ExpectQuery("SELECT id, title, author, release_date, created_by FROM movies").
		WithArgs(10, 2).
		WillReturnRows(rows)

	movies, err := repo.List(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Heat", movies[0].Title)
}

func TestMovieRepository_DeleteOwned(t *testing.T) {
	tests := []struct {
		name        string
		rows        int64
		wantDeleted bool
	}{
		{name: "owner deletes", rows: 1, wantDeleted: true},
		{name: "not owner or missing", rows: 0, wantDeleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewMovieRepository(db)

			mock.ExpectExec("DELETE FROM movies").
				WithArgs(int64(3), int64(7)).
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			deleted, err := repo.DeleteOwned(context.Background(), 3, 7)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}

func TestMovieRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieRepository(db)

	mock.ExpectExec("UPDATE movies SET").
		WithArgs("New Title", "New Author", "2001-01-01", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.Update(context.Background(), &models.Movie{
		ID: 3, Title: "New Title", Author: "New Author", ReleaseDate: "2001-01-01",
	})
	require.NoError(t, err)
	assert.True(t, updated)
}
