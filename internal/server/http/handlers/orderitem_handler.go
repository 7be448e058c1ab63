package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmart/shopmart/internal/domain/model"
	"github.com/shopmart/shopmart/internal/server/http/dto"
	"github.com/shopmart/shopmart/internal/usecase"
)

// OrderItemHandler serves line items, scoped through order ownership for
// regular callers and unscoped for the admin family.
type OrderItemHandler struct {
	facade OrderFacade
}

// NewOrderItemHandler constructs OrderItemHandler.
func NewOrderItemHandler(facade OrderFacade) *OrderItemHandler {
	return &OrderItemHandler{facade: facade}
}

// Create handles POST /orderitems. Name and price are stored exactly as
// supplied; the product row is never consulted.
func (h *OrderItemHandler) Create(c *gin.Context) {
	var req dto.OrderItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.CreateOrderItem(c.Request.Context(), CurrentUser(c).ID, usecase.OrderItemFields{
		OrderID:   req.Order,
		ProductID: req.Product,
		Name:      req.Name,
		Price:     req.Price,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderItemResponse(item))
}

// List handles GET /orderitems.
func (h *OrderItemHandler) List(c *gin.Context) {
	items, err := h.facade.OrderItemsForUser(c.Request.Context(), CurrentUser(c).ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderItemList(items))
}

// Get handles GET /orderitems/:id.
func (h *OrderItemHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.facade.OrderItemForUser(c.Request.Context(), CurrentUser(c).ID, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderItemResponse(item))
}

// ListAll handles GET /orderitemprivate.
func (h *OrderItemHandler) ListAll(c *gin.Context) {
	items, err := h.facade.AllOrderItems(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderItemList(items))
}

// GetAny handles GET /orderitemprivate/:id.
func (h *OrderItemHandler) GetAny(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.facade.OrderItemByID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderItemResponse(item))
}

// Update handles PUT and PATCH /orderitemprivate/:id. Order and product
// references in the payload are ignored.
func (h *OrderItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.OrderItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.UpdateOrderItem(c.Request.Context(), id, usecase.OrderItemPatch{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderItemResponse(item))
}

// Delete handles DELETE /orderitemprivate/:id.
func (h *OrderItemHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteOrderItem(c.Request.Context(), id); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toOrderItemList(items []model.OrderItem) []dto.OrderItemResponse {
	response := make([]dto.OrderItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toOrderItemResponse(&item))
	}
	return response
}

func toOrderItemResponse(item *model.OrderItem) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID:        item.ID,
		Order:     item.OrderID,
		Product:   item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
	}
}
