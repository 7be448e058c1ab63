package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmart/shopmart/internal/domain/model"
	"github.com/shopmart/shopmart/internal/server/http/dto"
	"github.com/shopmart/shopmart/internal/usecase"
)

// OrderHandler serves the owner-scoped order family, the admin family,
// and the explicit process action.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /orders. The order starts pending and belongs to
// the caller; owner and lifecycle fields in the payload are ignored.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentUser(c).ID, req.Price)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderDetail(order))
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.OrdersForUser(c.Request.Context(), CurrentUser(c).ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderList(orders))
}

// Get handles GET /orders/:id. Rows owned by someone else read as absent.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.facade.OrderForUser(c.Request.Context(), CurrentUser(c).ID, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderDetail(order))
}

// ListAll handles GET /orderprivate.
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderList(orders))
}

// GetAny handles GET /orderprivate/:id.
func (h *OrderHandler) GetAny(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.facade.OrderByID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderDetail(order))
}

// Update handles PUT and PATCH /orderprivate/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), id, usecase.OrderPatch{
		Price:       req.Price,
		Done:        req.Done,
		ProcessedAt: req.ProcessedAt,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderDetail(order))
}

// Delete handles DELETE /orderprivate/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Process handles POST /process-order. A request without a valid order
// id is a 400 with an explanatory body.
func (h *OrderHandler) Process(c *gin.Context) {
	var req dto.ProcessOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Order == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing order id."})
		return
	}

	order, err := h.facade.ProcessOrder(c.Request.Context(), *req.Order)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderDetail(order))
}

func toOrderList(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.OrderResponse{ID: o.ID, Price: o.Price, Done: o.Done})
	}
	return response
}

func toOrderDetail(o *model.Order) dto.OrderDetailResponse {
	return dto.OrderDetailResponse{
		OrderResponse: dto.OrderResponse{ID: o.ID, Price: o.Price, Done: o.Done},
		ProcessedAt:   o.ProcessedAt,
		CreatedAt:     o.CreatedAt,
	}
}
