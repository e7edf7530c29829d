package controller

import (
	"net/http"

	"ctchen222/Movie-Catalog/internal/api/models"
	"ctchen222/Movie-Catalog/internal/api/response"
	"ctchen222/Movie-Catalog/internal/api/service"

	"github.com/gin-gonic/gin"
)

// AuthController handles signup and login HTTP requests.
type AuthController struct {
	authService service.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Signup handles POST /signup. On success the new account's access token is
// returned immediately so the client does not need a follow-up login.
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := ac.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login handles POST /token and POST /login, accepting form-encoded or JSON
// credentials.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
