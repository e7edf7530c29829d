package controller

import (
	"net/http"

	"ctchen222/Movie-Catalog/internal/api/middleware"
	"ctchen222/Movie-Catalog/internal/api/models"
	"ctchen222/Movie-Catalog/internal/api/response"
	"ctchen222/Movie-Catalog/internal/api/service"

	"github.com/gin-gonic/gin"
)

// RatingController handles rating HTTP requests.
type RatingController struct {
	ratingService service.RatingService
}

// NewRatingController creates a new RatingController.
func NewRatingController(ratingService service.RatingService) *RatingController {
	return &RatingController{
		ratingService: ratingService,
	}
}

// Create handles POST /ratings/.
func (rc *RatingController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}

	var req models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	rating, err := rc.ratingService.Create(c.Request.Context(), &req, user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, rating)
}

// List handles GET /ratings/ with optional user_id and movie_id filters.
func (rc *RatingController) List(c *gin.Context) {
	var filter models.RatingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	ratings, err := rc.ratingService.List(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, ratings)
}
