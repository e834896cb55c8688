package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/cfiestas6/go-rest-shop/internal/auth"
	"github.com/cfiestas6/go-rest-shop/internal/domain"
	"github.com/cfiestas6/go-rest-shop/internal/usecase"
)

// ---- fakes ----

type fakeUserRepo struct {
	create      func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmail func(ctx context.Context, email string) (*domain.User, error)
	findByID    func(ctx context.Context, id string) (*domain.User, error)
	delete      func(ctx context.Context, id string) error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.create(ctx, user)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByID(ctx, id)
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type fakeEmailSender struct {
	send func(ctx context.Context, to, subject, body string) error
}

func (s *fakeEmailSender) Send(ctx context.Context, to, subject, body string) error {
	if s.send == nil {
		return nil
	}
	return s.send(ctx, to, subject, body)
}

// ---- helpers ----

const testJWTKey = "test-jwt-secret-at-least-32-chars!!"

func newAuthUsecase(t *testing.T, repo *fakeUserRepo, sender *fakeEmailSender) *usecase.AuthUsecase {
	t.Helper()
	tokens, err := auth.NewTokenService([]byte(testJWTKey))
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return usecase.NewAuthUsecase(repo, tokens, sender, logger)
}

func notFound(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

// ---- SignUp ----

func TestSignUp_EmailTaken(t *testing.T) {
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: "a@b.com"}, nil
		},
	}

	_, err := newAuthUsecase(t, repo, &fakeEmailSender{}).SignUp(context.Background(), "a@b.com", "secret1")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestSignUp_StoresHashedPassword(t *testing.T) {
	var stored *domain.User
	repo := &fakeUserRepo{
		findByEmail: notFound,
		create: func(_ context.Context, user *domain.User) (*domain.User, error) {
			stored = user
			return &domain.User{ID: "user-1", Email: user.Email, PasswordHash: user.PasswordHash}, nil
		},
	}

	user, err := newAuthUsecase(t, repo, &fakeEmailSender{}).SignUp(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("returned user has no ID")
	}
	if stored.PasswordHash == "secret1" {
		t.Fatal("password stored in plaintext")
	}
	if !auth.CheckPassword("secret1", stored.PasswordHash) {
		t.Error("stored digest does not verify against the password")
	}
}

func TestSignUp_InsertRaceLoser_StillConflict(t *testing.T) {
	// The pre-check passes but a concurrent sign-up wins the insert;
	// the unique index turns our insert into ErrEmailTaken.
	repo := &fakeUserRepo{
		findByEmail: notFound,
		create: func(_ context.Context, _ *domain.User) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}

	_, err := newAuthUsecase(t, repo, &fakeEmailSender{}).SignUp(context.Background(), "a@b.com", "secret1")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestSignUp_RepoError_Propagates(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, repoErr
		},
	}

	_, err := newAuthUsecase(t, repo, &fakeEmailSender{}).SignUp(context.Background(), "a@b.com", "secret1")
	if !errors.Is(err, repoErr) {
		t.Fatalf("want wrapped repoErr, got %v", err)
	}
}

func TestSignUp_EmailFailure_DoesNotFailSignUp(t *testing.T) {
	repo := &fakeUserRepo{
		findByEmail: notFound,
		create: func(_ context.Context, user *domain.User) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: user.Email}, nil
		},
	}
	sender := &fakeEmailSender{
		send: func(_ context.Context, _, _, _ string) error {
			return errors.New("smtp unavailable")
		},
	}

	if _, err := newAuthUsecase(t, repo, sender).SignUp(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSignUp_NeverEmailsPassword(t *testing.T) {
	var sentBody, sentSubject string
	repo := &fakeUserRepo{
		findByEmail: notFound,
		create: func(_ context.Context, user *domain.User) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: user.Email}, nil
		},
	}
	sender := &fakeEmailSender{
		send: func(_ context.Context, _, subject, body string) error {
			sentSubject, sentBody = subject, body
			return nil
		},
	}

	if _, err := newAuthUsecase(t, repo, sender).SignUp(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{sentSubject, sentBody} {
		if strings.Contains(s, "secret1") {
			t.Errorf("email content leaks the password: %q", s)
		}
	}
}

// ---- LogIn ----

func TestLogIn_UnknownEmail_InvalidCredentials(t *testing.T) {
	repo := &fakeUserRepo{findByEmail: notFound}

	_, err := newAuthUsecase(t, repo, &fakeEmailSender{}).LogIn(context.Background(), "a@b.com", "secret1")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogIn_WrongPassword_InvalidCredentials(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: "a@b.com", PasswordHash: hash}, nil
		},
	}

	_, err = newAuthUsecase(t, repo, &fakeEmailSender{}).LogIn(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogIn_ReturnsVerifiableToken(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	repo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: "a@b.com", PasswordHash: hash}, nil
		},
	}

	signed, err := newAuthUsecase(t, repo, &fakeEmailSender{}).LogIn(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tokens, err := auth.NewTokenService([]byte(testJWTKey))
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want %q", claims.Subject, "user-1")
	}
	if claims.Email != "a@b.com" {
		t.Errorf("email = %q, want %q", claims.Email, "a@b.com")
	}
}

// ---- DeleteAccount ----

func TestDeleteAccount_PassesThrough(t *testing.T) {
	var deletedID string
	repo := &fakeUserRepo{
		delete: func(_ context.Context, id string) error {
			deletedID = id
			return nil
		},
	}

	if err := newAuthUsecase(t, repo, &fakeEmailSender{}).DeleteAccount(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletedID != "user-1" {
		t.Errorf("deleted ID = %q, want %q", deletedID, "user-1")
	}
}

func TestDeleteAccount_RepoError_Propagates(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &fakeUserRepo{
		delete: func(_ context.Context, _ string) error { return repoErr },
	}

	err := newAuthUsecase(t, repo, &fakeEmailSender{}).DeleteAccount(context.Background(), "user-1")
	if !errors.Is(err, repoErr) {
		t.Fatalf("want wrapped repoErr, got %v", err)
	}
}
