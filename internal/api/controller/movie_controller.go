package controller

import (
	"net/http"
	"strconv"

	"ctchen222/Movie-Catalog/internal/api/middleware"
	"ctchen222/Movie-Catalog/internal/api/models"
	"ctchen222/Movie-Catalog/internal/api/response"
	"ctchen222/Movie-Catalog/internal/api/service"

	"github.com/gin-gonic/gin"
)

// MovieController handles movie HTTP requests.
type MovieController struct {
	movieService service.MovieService
}

// NewMovieController creates a new MovieController.
func NewMovieController(movieService service.MovieService) *MovieController {
	return &MovieController{
		movieService: movieService,
	}
}

func movieID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid movie id")
		return 0, false
	}
	return id, true
}

// List handles GET /movies/.
func (mc *MovieController) List(c *gin.Context) {
	var query models.MovieListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	movies, err := mc.movieService.List(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, movies)
}

// Create handles POST /movie/. The creator is the authenticated user.
func (mc *MovieController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}

	var req models.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	movie, err := mc.movieService.Create(c.Request.Context(), &req, user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, movie)
}

// Get handles GET /movie/:id.
func (mc *MovieController) Get(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		return
	}

	movie, err := mc.movieService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, movie)
}

// Update handles PUT /movies/:id. Any authenticated user may update any
// movie; ownership is only enforced on delete.
func (mc *MovieController) Update(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		return
	}

	var req models.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	movie, err := mc.movieService.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, movie)
}

// Delete handles DELETE /movies/:id. A movie the requester does not own is
// reported as not found; on success the removed movie is echoed back.
func (mc *MovieController) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}

	id, ok := movieID(c)
	if !ok {
		return
	}

	movie, err := mc.movieService.Delete(c.Request.Context(), id, user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, movie)
}
