package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmart/shopmart/internal/domain/model"
	"github.com/shopmart/shopmart/internal/server/http/dto"
	"github.com/shopmart/shopmart/internal/usecase"
)

// ReviewHandler serves reviews. Reads and writes are open to any
// authenticated caller; only creation pins the author.
type ReviewHandler struct {
	facade CatalogFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade CatalogFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// List handles GET /reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.facade.Reviews(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		response = append(response, dto.ReviewResponse{ID: r.ID, Name: r.Name, Rating: r.Rating})
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /reviews/:id.
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	review, err := h.facade.Review(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewDetail(review))
}

// Create handles POST /reviews. The author is always the caller.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), CurrentUser(c).ID, usecase.ReviewFields{
		ProductID: req.Product,
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toReviewDetail(review))
}

// Update handles PUT and PATCH /reviews/:id. Product and user fields in
// the payload are accepted and ignored.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.UpdateReview(c.Request.Context(), id, usecase.ReviewPatch{
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReviewDetail(review))
}

// Delete handles DELETE /reviews/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteReview(c.Request.Context(), id); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toReviewDetail(r *model.Review) dto.ReviewDetailResponse {
	return dto.ReviewDetailResponse{
		ReviewResponse: dto.ReviewResponse{ID: r.ID, Name: r.Name, Rating: r.Rating},
		Comment:        r.Comment,
	}
}
