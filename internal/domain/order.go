package domain

import "errors"

var ErrOrderNotFound = errors.New("order not found")

type Order struct {
	ID        string
	ProductID string
	Quantity  int

	// Product is populated on reads that join the products collection.
	// Nil when the referenced product no longer exists.
	Product *Product
}
