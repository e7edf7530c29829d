package repository

import (
	"context"
	"database/sql/driver"
	"testing"

	"ctchen222/Movie-Catalog/internal/api/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateReply(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	parentID := int64(5)
	mock.ExpectExec("INSERT INTO comments").
		WithArgs(int64(7), int64(3), "agreed", parentID).
		WillReturnResult(sqlmock.NewResult(6, 1))

	comment := &models.Comment{UserID: 7, MovieID: 3, Comment: "agreed", ParentID: &parentID}
	require.NoError(t, repo.Create(context.Background(), comment))
	assert.EqualValues(t, 6, comment.ID)
}

func TestCommentRepository_ListFilters(t *testing.T) {
	movieID := int64(3)
	userID := int64(7)

	tests := []struct {
		name   string
		filter models.CommentFilter
		args   []any
	}{
		{name: "no filter", filter: models.CommentFilter{}, args: nil},
		{name: "by movie", filter: models.CommentFilter{MovieID: &movieID}, args: []any{movieID}},
		{name: "by user and movie", filter: models.CommentFilter{UserID: &userID, MovieID: &movieID}, args: []any{userID, movieID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewCommentRepository(db)

			driverArgs := make([]driver.Value, 0, len(tt.args))
			for _, a := range tt.args {
				driverArgs = append(driverArgs, a)
			}

			expect := mock.ExpectQuery("SELECT id, user_id, movie_id, comment, parent_id FROM comments")
			if len(driverArgs) > 0 {
				expect.WithArgs(driverArgs...)
			}
			expect.WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "movie_id", "comment", "parent_id"}).
				AddRow(1, 7, 3, "first", nil))

			comments, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)
			require.Len(t, comments, 1)
			assert.Nil(t, comments[0].ParentID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
