package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cfiestas6/go-rest-shop/internal/auth"
	"github.com/cfiestas6/go-rest-shop/internal/domain"
	"github.com/cfiestas6/go-rest-shop/internal/email"
	"github.com/cfiestas6/go-rest-shop/internal/repository"
)

type AuthUsecase struct {
	users  repository.UserRepository
	tokens *auth.TokenService
	email  email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, tokens *auth.TokenService, emailSender email.Sender, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		tokens: tokens,
		email:  emailSender,
		logger: logger.With("component", "auth_usecase"),
	}
}

// SignUp checks that the email is free, hashes the password, and persists the
// account. The check and the insert are two separate operations; the unique
// index on users.email is what holds under concurrent sign-ups, and an insert
// losing that race surfaces as the same domain.ErrEmailTaken as the pre-check.
func (u *AuthUsecase) SignUp(ctx context.Context, emailAddr, password string) (*domain.User, error) {
	_, err := u.users.FindByEmail(ctx, emailAddr)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, &domain.User{Email: emailAddr, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Welcome email is best effort; a delivery failure never fails the sign-up.
	subject := "Welcome!"
	body := "<p>Your account was created successfully.</p>"
	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.ErrorContext(ctx, "send welcome email", "error", err)
	}

	return user, nil
}

// LogIn verifies the credentials and issues a bearer token. Unknown email and
// wrong password both return domain.ErrInvalidCredentials so the response does
// not reveal whether the account exists.
func (u *AuthUsecase) LogIn(ctx context.Context, emailAddr, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.Email, user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// DeleteAccount removes the account unconditionally by ID.
func (u *AuthUsecase) DeleteAccount(ctx context.Context, id string) error {
	if err := u.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
