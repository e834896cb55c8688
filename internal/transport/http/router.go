package httptransport

import (
	"log/slog"

	"github.com/cfiestas6/go-rest-shop/internal/auth"
	"github.com/cfiestas6/go-rest-shop/internal/transport/http/handler"
	"github.com/cfiestas6/go-rest-shop/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, productHandler *handler.ProductHandler, orderHandler *handler.OrderHandler, tokens *auth.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(tokens, logger)

	// User routes; only deletion requires a token
	user := r.Group("/user")
	user.POST("/signup", authHandler.SignUp)
	user.POST("/login", authHandler.LogIn)
	user.DELETE("/:userId", authMW, authHandler.DeleteAccount)

	// Product routes; reads are public, mutations require a token
	products := r.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:productId", productHandler.GetByID)
	products.POST("", authMW, productHandler.Create)
	products.PATCH("/:productId", authMW, productHandler.Update)
	products.DELETE("/:productId", authMW, productHandler.Delete)

	// Order routes are fully protected
	orders := r.Group("/orders", authMW)
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:orderId", orderHandler.GetByID)
	orders.DELETE("/:orderId", orderHandler.Delete)

	return r
}
