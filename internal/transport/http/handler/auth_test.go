package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/cfiestas6/go-rest-shop/internal/domain"
	"github.com/cfiestas6/go-rest-shop/internal/transport/http/handler"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthUsecase implements the unexported authUsecaser interface via method matching.
type fakeAuthUsecase struct {
	signUp        func(ctx context.Context, email, password string) (*domain.User, error)
	logIn         func(ctx context.Context, email, password string) (string, error)
	deleteAccount func(ctx context.Context, id string) error
}

func (f *fakeAuthUsecase) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	return f.signUp(ctx, email, password)
}

func (f *fakeAuthUsecase) LogIn(ctx context.Context, email, password string) (string, error) {
	return f.logIn(ctx, email, password)
}

func (f *fakeAuthUsecase) DeleteAccount(ctx context.Context, id string) error {
	return f.deleteAccount(ctx, id)
}

func newTestEngine(uc *fakeAuthUsecase) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewAuthHandler(uc, logger)

	r := gin.New()
	r.POST("/user/signup", h.SignUp)
	r.POST("/user/login", h.LogIn)
	r.DELETE("/user/:userId", h.DeleteAccount)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// ---- SignUp ----

func TestSignUp_InvalidJSON_Returns400(t *testing.T) {
	w := postJSON(t, newTestEngine(&fakeAuthUsecase{}), "/user/signup", `{bad json}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSignUp_InvalidEmail_Returns400(t *testing.T) {
	w := postJSON(t, newTestEngine(&fakeAuthUsecase{}), "/user/signup",
		`{"email":"not-an-email","password":"secret1"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSignUp_MissingPassword_Returns400(t *testing.T) {
	w := postJSON(t, newTestEngine(&fakeAuthUsecase{}), "/user/signup",
		`{"email":"a@b.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSignUp_Created_Returns201(t *testing.T) {
	uc := &fakeAuthUsecase{
		signUp: func(_ context.Context, email, _ string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: email}, nil
		},
	}

	w := postJSON(t, newTestEngine(uc), "/user/signup", `{"email":"a@b.com","password":"secret1"}`)
	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if !strings.Contains(w.Body.String(), "User created successfully!") {
		t.Errorf("body = %s, want creation message", w.Body.String())
	}
}

func TestSignUp_EmailTaken_Returns409(t *testing.T) {
	uc := &fakeAuthUsecase{
		signUp: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}

	w := postJSON(t, newTestEngine(uc), "/user/signup", `{"email":"a@b.com","password":"secret1"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestSignUp_UsecaseError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		signUp: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, errors.New("db down")
		},
	}

	w := postJSON(t, newTestEngine(uc), "/user/signup", `{"email":"a@b.com","password":"secret1"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

// ---- LogIn ----

func TestLogIn_InvalidCredentials_Returns401(t *testing.T) {
	uc := &fakeAuthUsecase{
		logIn: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}

	w := postJSON(t, newTestEngine(uc), "/user/login", `{"email":"a@b.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["message"] != "Auth failed." {
		t.Errorf("message = %q, want %q", body["message"], "Auth failed.")
	}
}

func TestLogIn_Success_ReturnsToken(t *testing.T) {
	uc := &fakeAuthUsecase{
		logIn: func(_ context.Context, _, _ string) (string, error) {
			return "signed-token", nil
		},
	}

	w := postJSON(t, newTestEngine(uc), "/user/login", `{"email":"a@b.com","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["token"] != "signed-token" {
		t.Errorf("token = %q, want %q", body["token"], "signed-token")
	}
}

func TestLogIn_UsecaseError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		logIn: func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("db down")
		},
	}

	w := postJSON(t, newTestEngine(uc), "/user/login", `{"email":"a@b.com","password":"secret1"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

// ---- DeleteAccount ----

func TestDeleteAccount_Returns200(t *testing.T) {
	var deletedID string
	uc := &fakeAuthUsecase{
		deleteAccount: func(_ context.Context, id string) error {
			deletedID = id
			return nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/user/user-1", nil)
	newTestEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if deletedID != "user-1" {
		t.Errorf("deleted ID = %q, want %q", deletedID, "user-1")
	}
}

func TestDeleteAccount_StorageError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		deleteAccount: func(_ context.Context, _ string) error {
			return errors.New("db down")
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/user/user-1", nil)
	newTestEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
