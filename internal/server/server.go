package server

import (
	"ctchen222/Movie-Catalog/internal/api/controller"
	"ctchen222/Movie-Catalog/internal/api/middleware"
	"ctchen222/Movie-Catalog/internal/api/service"
	"ctchen222/Movie-Catalog/internal/auth"

	"github.com/gin-gonic/gin"
)

// Server owns the gin engine and wires controllers to routes.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the HTTP surface. Public routes (signup, token, reads) are
// registered directly; mutating catalog routes sit behind the bearer-token
// middleware.
func NewServer(
	tokens *auth.TokenManager,
	authService service.AuthService,
	authController *controller.AuthController,
	movieController *controller.MovieController,
	ratingController *controller.RatingController,
	commentController *controller.CommentController,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestID())

	engine.POST("/signup", authController.Signup)
	engine.POST("/token", authController.Login)
	engine.POST("/login", authController.Login)

	engine.GET("/movies/", movieController.List)
	engine.GET("/movie/:id", movieController.Get)
	engine.GET("/ratings/", ratingController.List)
	engine.GET("/comments/", commentController.List)

	authed := engine.Group("/", middleware.RequireAuth(tokens, authService))
	authed.POST("/movie/", movieController.Create)
	authed.PUT("/movies/:id", movieController.Update)
	authed.DELETE("/movies/:id", movieController.Delete)
	authed.POST("/ratings/", ratingController.Create)
	authed.POST("/comments/", commentController.Create)
	authed.POST("/comments/reply/", commentController.Reply)

	return &Server{engine: engine}
}

// Engine exposes the underlying gin engine as the http.Handler to serve.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
