package models

// Comment represents a comment row. ParentID is set on replies and forms a
// one-level reply tree over the self-referencing foreign key.
type Comment struct {
	ID       int64  `db:"id" json:"id"`
	UserID   int64  `db:"user_id" json:"user_id"`
	MovieID  int64  `db:"movie_id" json:"movie_id"`
	Comment  string `db:"comment" json:"comment"`
	ParentID *int64 `db:"parent_id" json:"parent_id,omitempty"`
}

// CommentRequest defines the body for commenting on a movie.
type CommentRequest struct {
	MovieID int64  `json:"movie_id" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// ReplyRequest defines the body for replying to an existing comment. The
// reply's movie is inherited from the parent comment.
type ReplyRequest struct {
	CommentID int64  `json:"comment_id" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

// CommentFilter defines the optional query filters for listing comments.
type CommentFilter struct {
	UserID  *int64 `form:"user_id"`
	MovieID *int64 `form:"movie_id"`
}
