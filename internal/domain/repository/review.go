package repository

import (
	"context"

	"github.com/shopmart/shopmart/internal/domain/model"
)

// ReviewRepository describes persistence operations for product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id int64) (*model.Review, error)
	List(ctx context.Context) ([]model.Review, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id int64) error
}
