package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmart/shopmart/internal/domain/model"
	"github.com/shopmart/shopmart/internal/server/http/dto"
	"github.com/shopmart/shopmart/internal/usecase"
)

// ProductHandler serves the public catalog and the owner-scoped private
// product family.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toProductList(products))
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductDetail(product))
}

// ListOwned handles GET /privateproducts.
func (h *ProductHandler) ListOwned(c *gin.Context) {
	products, err := h.facade.OwnedProducts(c.Request.Context(), CurrentUser(c).ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toProductList(products))
}

// GetOwned handles GET /privateproducts/:id.
func (h *ProductHandler) GetOwned(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.facade.OwnedProduct(c.Request.Context(), CurrentUser(c).ID, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductDetail(product))
}

// Create handles POST /privateproducts. Ownership is forced to the
// caller; a user field in the payload is ignored.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), CurrentUser(c).ID, usecase.ProductFields{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductDetail(product))
}

// Update handles PUT and PATCH /privateproducts/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), CurrentUser(c).ID, id, usecase.ProductPatch{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductDetail(product))
}

// Delete handles DELETE /privateproducts/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), CurrentUser(c).ID, id); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toProductList(products []model.Product) []dto.ProductResponse {
	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ProductResponse{ID: p.ID, Title: p.Title, Price: p.Price})
	}
	return response
}

func toProductDetail(p *model.Product) dto.ProductDetailResponse {
	return dto.ProductDetailResponse{
		ProductResponse: dto.ProductResponse{ID: p.ID, Title: p.Title, Price: p.Price},
		Description:     p.Description,
	}
}
