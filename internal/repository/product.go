package repository

import (
	"context"

	"github.com/cfiestas6/go-rest-shop/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)

	// Update applies the non-nil fields. Returns domain.ErrProductNotFound
	// when the ID matches nothing.
	Update(ctx context.Context, id string, update domain.ProductUpdate) error

	// Delete removes the product by ID. Deleting a missing product is not an error.
	Delete(ctx context.Context, id string) error
}
