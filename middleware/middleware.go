package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

const authUserKey = "authUser"

// RequireAuth extracts and verifies the bearer token, then attaches the
// caller's identity to the request context. The client always gets the same
// generic 401; the actual failure cause goes to the log.
func RequireAuth(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "No token provided. Authorization denied.",
			})
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := jwtManager.VerifyToken(tokenStr)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("token rejected")
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token. Authorization denied.",
			})
			c.Abort()
			return
		}

		c.Set(authUserKey, *user)
		c.Next()
	}
}

// CurrentUser returns the identity RequireAuth attached to the context.
func CurrentUser(c *gin.Context) (domain.AuthUser, bool) {
	val, exists := c.Get(authUserKey)
	if !exists {
		return domain.AuthUser{}, false
	}
	user, ok := val.(domain.AuthUser)
	return user, ok
}

// RequireElevated allows admin and hr only.
func RequireElevated() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.Role.Elevated() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Access denied. Admin or HR role required.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSelfOrElevated allows elevated roles, or the owner of the targeted
// resource. The owner id comes from the named route parameter.
func RequireSelfOrElevated(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token. Authorization denied.",
			})
			c.Abort()
			return
		}

		if user.Role.Elevated() || user.ID == c.Param(paramName) {
			c.Next()
			return
		}

		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Access denied. You can only access your own resources.",
		})
		c.Abort()
	}
}
