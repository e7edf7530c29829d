package models

// Movie represents a movie row. ReleaseDate travels as a YYYY-MM-DD string.
type Movie struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Author      string `db:"author" json:"author"`
	ReleaseDate string `db:"release_date" json:"release_date"`
	CreatedBy   int64  `db:"created_by" json:"created_by"`
}

// MovieRequest defines the body for creating or updating a movie.
type MovieRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	ReleaseDate string `json:"release_date" binding:"required,datetime=2006-01-02"`
}

// MovieListQuery defines the pagination parameters for listing movies.
// A limit of zero is valid and yields an empty page.
type MovieListQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=10" binding:"min=0"`
}
