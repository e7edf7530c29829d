package controller

import (
	"net/http"

	"ctchen222/Movie-Catalog/internal/api/middleware"
	"ctchen222/Movie-Catalog/internal/api/models"
	"ctchen222/Movie-Catalog/internal/api/response"
	"ctchen222/Movie-Catalog/internal/api/service"

	"github.com/gin-gonic/gin"
)

// CommentController handles comment HTTP requests.
type CommentController struct {
	commentService service.CommentService
}

// NewCommentController creates a new CommentController.
func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// Create handles POST /comments/.
func (cc *CommentController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}

	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := cc.commentService.Create(c.Request.Context(), &req, user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, comment)
}

// Reply handles POST /comments/reply/.
func (cc *CommentController) Reply(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}

	var req models.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := cc.commentService.Reply(c.Request.Context(), &req, user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, reply)
}

// List handles GET /comments/ with optional user_id and movie_id filters.
func (cc *CommentController) List(c *gin.Context) {
	var filter models.CommentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	comments, err := cc.commentService.List(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, comments)
}
