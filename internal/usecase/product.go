package usecase

import (
	"context"
	"fmt"

	"github.com/cfiestas6/go-rest-shop/internal/domain"
	"github.com/cfiestas6/go-rest-shop/internal/repository"
)

type ProductUsecase struct {
	products repository.ProductRepository
}

func NewProductUsecase(products repository.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

type CreateProductInput struct {
	Name  string
	Price float64
}

func (u *ProductUsecase) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	product, err := u.products.Create(ctx, &domain.Product{
		Name:  input.Name,
		Price: input.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (u *ProductUsecase) List(ctx context.Context) ([]*domain.Product, error) {
	return u.products.List(ctx)
}

func (u *ProductUsecase) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return u.products.FindByID(ctx, id)
}

func (u *ProductUsecase) Update(ctx context.Context, id string, update domain.ProductUpdate) error {
	return u.products.Update(ctx, id, update)
}

func (u *ProductUsecase) Delete(ctx context.Context, id string) error {
	return u.products.Delete(ctx, id)
}
