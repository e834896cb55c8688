package repository

import (
	"context"

	"github.com/cfiestas6/go-rest-shop/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// List and FindByID populate Order.Product from the products collection.
	List(ctx context.Context) ([]*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)

	// Delete removes the order by ID. Deleting a missing order is not an error.
	Delete(ctx context.Context, id string) error
}
