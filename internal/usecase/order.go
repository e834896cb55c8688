package usecase

import (
	"context"
	"fmt"

	"github.com/cfiestas6/go-rest-shop/internal/domain"
	"github.com/cfiestas6/go-rest-shop/internal/repository"
)

type OrderUsecase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func NewOrderUsecase(orders repository.OrderRepository, products repository.ProductRepository) *OrderUsecase {
	return &OrderUsecase{orders: orders, products: products}
}

type CreateOrderInput struct {
	ProductID string
	Quantity  int
}

// Create verifies the product exists before inserting the order.
// The two steps are not atomic; the product can disappear in between,
// which reads then surface as an order with no populated product.
func (u *OrderUsecase) Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if _, err := u.products.FindByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	order, err := u.orders.Create(ctx, &domain.Order{
		ProductID: input.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (u *OrderUsecase) List(ctx context.Context) ([]*domain.Order, error) {
	return u.orders.List(ctx)
}

func (u *OrderUsecase) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return u.orders.FindByID(ctx, id)
}

func (u *OrderUsecase) Delete(ctx context.Context, id string) error {
	return u.orders.Delete(ctx, id)
}
