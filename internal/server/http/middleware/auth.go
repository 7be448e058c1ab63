package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shopmart/shopmart/internal/domain/model"
	"github.com/shopmart/shopmart/internal/usecase"
)

// UserContextKey is a gin context key for the authenticated user.
const UserContextKey = "currentUser"

// TokenAuthenticator resolves bearer tokens into user accounts.
type TokenAuthenticator interface {
	ParseAccessToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// Identify resolves the caller from the Authorization header when one is
// present. It never aborts: missing or invalid credentials leave the
// request anonymous and the policy check decides what that means.
func Identify(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, err := auth.ParseAccessToken(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := auth.UserByID(c.Request.Context(), userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// Authorize gates the route against the policy table for the resource
// family and action, answering 401/403/405 as the table dictates.
func Authorize(res usecase.Resource, act usecase.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		verdict := usecase.Evaluate(res, act, RoleOf(c))
		if !verdict.Allowed {
			c.AbortWithStatus(verdict.DenyStatus)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

// RoleOf maps the request identity onto a policy role.
func RoleOf(c *gin.Context) usecase.Role {
	user := CurrentUser(c)
	switch {
	case user == nil:
		return usecase.RoleAnonymous
	case user.IsAdmin():
		return usecase.RoleAdmin
	default:
		return usecase.RoleUser
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
