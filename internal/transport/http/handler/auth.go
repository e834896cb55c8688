package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cfiestas6/go-rest-shop/internal/domain"
	"github.com/cfiestas6/go-rest-shop/internal/metrics"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
	LogIn(ctx context.Context, email, password string) (string, error)
	DeleteAccount(ctx context.Context, id string) error
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /user/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.authUsecase.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
			c.JSON(http.StatusConflict, gin.H{"message": msgEmailTaken})
			return
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(c.Request.Context(), "sign up", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	c.JSON(http.StatusCreated, gin.H{"message": msgUserCreated})
}

// POST /user/login
// Returns the same 401 body for unknown email and wrong password.
func (h *AuthHandler) LogIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authUsecase.LogIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgAuthFailed})
			return
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(c.Request.Context(), "log in", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"message": msgAuthOK,
		"token":   token,
	})
}

// DELETE /user/:userId
// Any authenticated caller may delete any account by id; the path id is not
// compared against the caller's own token subject.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	id := c.Param("userId")

	if err := h.authUsecase.DeleteAccount(c.Request.Context(), id); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "delete account", "user_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgUserDeleted})
}
