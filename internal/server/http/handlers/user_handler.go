package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/shopmart/shopmart/internal/pkg/auth"
	"github.com/shopmart/shopmart/internal/server/http/dto"
	"github.com/shopmart/shopmart/internal/usecase"
)

// UserHandler processes signup, login, token refresh, and profile
// management.
type UserHandler struct {
	facade AuthFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade AuthFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Signup handles POST /user/signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{Email: user.Email, Name: user.Name})
}

// Login handles POST /user/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, pair, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Access:    pair.Access,
		Refresh:   pair.Refresh,
		Email:     user.Email,
		Name:      user.Name,
		Superuser: user.Superuser,
	})
}

// Refresh handles POST /user/refresh.
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	pair, err := h.facade.RefreshTokens(c.Request.Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrInvalidToken) {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh})
}

// Me handles GET /user/me.
func (h *UserHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, dto.UserResponse{Email: user.Email, Name: user.Name})
}

// UpdateMe handles PUT and PATCH /user/me; both apply partial patches.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), CurrentUser(c).ID, usecase.UserPatch{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{Email: user.Email, Name: user.Name})
}
