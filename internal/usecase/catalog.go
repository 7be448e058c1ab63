package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/shopmart/shopmart/internal/domain/errors"
	"github.com/shopmart/shopmart/internal/domain/model"
	"github.com/shopmart/shopmart/internal/domain/repository"
)

// CatalogUseCase manages products and their reviews.
type CatalogUseCase struct {
	products repository.ProductRepository
	reviews  repository.ReviewRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, reviews repository.ReviewRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, reviews: reviews}
}

// ProductFields carries the caller-writable product attributes. The owner
// is never part of the payload contract.
type ProductFields struct {
	Title       string
	Price       decimal.Decimal
	Description string
	ImagePath   string
}

// ProductPatch carries optional fields for partial updates.
type ProductPatch struct {
	Title       *string
	Price       *decimal.Decimal
	Description *string
	ImagePath   *string
}

// ReviewFields carries the caller-writable review attributes.
type ReviewFields struct {
	ProductID *int64
	Name      string
	Rating    int
	Comment   string
}

// ReviewPatch carries optional fields for partial updates. Product and
// author references are deliberately absent: they are immutable after
// creation, and patches naming them are accepted but ignored.
type ReviewPatch struct {
	Name    *string
	Rating  *int
	Comment *string
}

// Products returns the public, unfiltered catalog.
func (u *CatalogUseCase) Products(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Product returns a single catalog entry.
func (u *CatalogUseCase) Product(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// OwnedProducts returns products belonging to the caller.
func (u *CatalogUseCase) OwnedProducts(ctx context.Context, userID int64) ([]model.Product, error) {
	return u.products.ListByOwner(ctx, userID)
}

// OwnedProduct returns the product only when the caller owns it. A row
// owned by someone else is reported as absent, not forbidden.
func (u *CatalogUseCase) OwnedProduct(ctx context.Context, userID, id int64) (*model.Product, error) {
	product, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.OwnedBy(userID) {
		return nil, domainErrors.ErrNotFound
	}
	return product, nil
}

// CreateProduct stores a new product with ownership forced to the caller.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, userID int64, fields ProductFields) (*model.Product, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return nil, domainErrors.ErrValidation
	}
	product := &model.Product{
		UserID:      &userID,
		Title:       fields.Title,
		Price:       fields.Price,
		Description: fields.Description,
		ImagePath:   fields.ImagePath,
	}
	if err := u.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies a partial patch to a caller-owned product. The
// owner reference is never touched by a patch.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, userID, id int64, patch ProductPatch) (*model.Product, error) {
	product, err := u.OwnedProduct(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, domainErrors.ErrValidation
		}
		product.Title = *patch.Title
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.ImagePath != nil {
		product.ImagePath = *patch.ImagePath
	}

	if err := u.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a caller-owned product.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, userID, id int64) error {
	if _, err := u.OwnedProduct(ctx, userID, id); err != nil {
		return err
	}
	return u.products.Delete(ctx, id)
}

// Reviews returns all reviews; review reads are not owner-scoped.
func (u *CatalogUseCase) Reviews(ctx context.Context) ([]model.Review, error) {
	return u.reviews.List(ctx)
}

// Review returns a single review.
func (u *CatalogUseCase) Review(ctx context.Context, id int64) (*model.Review, error) {
	return u.reviews.GetByID(ctx, id)
}

// CreateReview stores a review authored by the caller.
func (u *CatalogUseCase) CreateReview(ctx context.Context, userID int64, fields ReviewFields) (*model.Review, error) {
	review := &model.Review{
		ProductID: fields.ProductID,
		UserID:    userID,
		Name:      fields.Name,
		Rating:    fields.Rating,
		Comment:   fields.Comment,
	}
	if err := u.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateReview applies a partial patch. Any authenticated caller may
// mutate any review; this asymmetry with the other entities is intended.
func (u *CatalogUseCase) UpdateReview(ctx context.Context, id int64, patch ReviewPatch) (*model.Review, error) {
	review, err := u.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		review.Name = *patch.Name
	}
	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		review.Comment = *patch.Comment
	}

	if err := u.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review on behalf of any authenticated caller.
func (u *CatalogUseCase) DeleteReview(ctx context.Context, id int64) error {
	if _, err := u.reviews.GetByID(ctx, id); err != nil {
		return err
	}
	return u.reviews.Delete(ctx, id)
}
