package middleware

import (
	"strings"

	"ctchen222/Movie-Catalog/internal/api/models"
	"ctchen222/Movie-Catalog/internal/api/response"
	"ctchen222/Movie-Catalog/internal/api/service"
	"ctchen222/Movie-Catalog/internal/auth"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key under which the authenticated user is
// stored for downstream handlers.
const CurrentUserKey = "currentUser"

// RequireAuth gates a route group behind bearer-token authentication. The
// token is verified, its subject resolved to a live user, and the user
// attached to the request context. Every failure mode produces the same
// uniform 401 so responses cannot reveal which check rejected the request.
func RequireAuth(tokens *auth.TokenManager, authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, tokenString, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			response.Unauthenticated(c)
			return
		}

		subject, err := tokens.Verify(tokenString)
		if err != nil {
			response.Unauthenticated(c)
			return
		}

		user, err := authService.ResolveIdentity(c.Request.Context(), subject)
		if err != nil {
			// Covers both a deleted account and a store failure; neither may
			// let the request through.
			response.Unauthenticated(c)
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
