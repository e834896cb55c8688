package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID    string
	Name  string
	Price float64
}

// ProductUpdate carries the fields a PATCH may change. Nil means "leave as is".
type ProductUpdate struct {
	Name  *string
	Price *float64
}
