package repository

import (
	"context"

	"github.com/cfiestas6/go-rest-shop/internal/domain"
)

// UseCase depends on interface, not concrete implementation.
// This way we get: 1) can swap DB later without touching usecase 2) We can pass a mock implementation of interface in tests
type UserRepository interface {
	// Create persists a new user and returns it with the generated ID.
	// A uniqueness violation on email surfaces as domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByEmail returns domain.ErrUserNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID returns domain.ErrUserNotFound when the ID matches nothing.
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// Delete removes the user by ID. Deleting a missing user is not an error.
	Delete(ctx context.Context, id string) error
}
