package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/institute-dashboard-api/pkg/errors"
	"github.com/noah-isme/institute-dashboard-api/pkg/response"
)

// RequireRoles allows the request through only when the authenticated role is listed.
// It must run after JWT.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
