package models

// Rating represents a rating row.
type Rating struct {
	ID      int64 `db:"id" json:"id"`
	UserID  int64 `db:"user_id" json:"user_id"`
	MovieID int64 `db:"movie_id" json:"movie_id"`
	Rating  int   `db:"rating" json:"rating"`
}

// RatingRequest defines the body for rating a movie. Rating is a pointer so
// that a rating of zero survives the required check.
type RatingRequest struct {
	MovieID int64 `json:"movie_id" binding:"required"`
	Rating  *int  `json:"rating" binding:"required"`
}

// RatingFilter defines the optional query filters for listing ratings.
type RatingFilter struct {
	UserID  *int64 `form:"user_id"`
	MovieID *int64 `form:"movie_id"`
}
