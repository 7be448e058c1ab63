package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopmart/shopmart/internal/domain/errors"
	"github.com/shopmart/shopmart/internal/domain/model"
	"github.com/shopmart/shopmart/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated user from context.
func CurrentUser(c *gin.Context) *model.User {
	return middleware.CurrentUser(c)
}

// pathID parses the :id route parameter. Non-numeric identifiers map to
// absent rows, the same as an unmatched lookup.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// abortWithDomainError maps domain sentinel errors onto HTTP statuses.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInvalidEmail),
		errors.Is(err, domainErrors.ErrWeakPassword),
		errors.Is(err, domainErrors.ErrValidation):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.Status(http.StatusUnauthorized)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
