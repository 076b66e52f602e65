package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/shared/response"
)

// ContextResolver produces the per-request authorization context.
type ContextResolver interface {
	Resolve(ctx context.Context, authorization string) *auth.AuthContext
}

// Identity resolves the caller once per request and stores the result on the request context.
// It never aborts: unresolvable callers continue as guests.
func Identity(resolver ContextResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		c.Request = c.Request.WithContext(auth.WithAuthContext(c.Request.Context(), ac))
		if ac.IsAuthenticated() {
			c.Set("user_id", ac.ID().String())
		}
		c.Set("role", string(ac.Role))
		c.Next()
	}
}

func guard(check func(*auth.AuthContext) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := check(auth.FromContext(c.Request.Context())); err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAuthenticated() gin.HandlerFunc { return guard(auth.RequireAuthenticated) }
func RequireAuthor() gin.HandlerFunc        { return guard(auth.RequireAuthor) }
func RequireAdmin() gin.HandlerFunc         { return guard(auth.RequireAdmin) }
