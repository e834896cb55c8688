package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cfiestas6/go-rest-shop/config"
	"github.com/cfiestas6/go-rest-shop/internal/auth"
	"github.com/cfiestas6/go-rest-shop/internal/email"
	"github.com/cfiestas6/go-rest-shop/internal/health"
	"github.com/cfiestas6/go-rest-shop/internal/infrastructure/mongodb"
	ctxlog "github.com/cfiestas6/go-rest-shop/internal/log"
	"github.com/cfiestas6/go-rest-shop/internal/metrics"
	httptransport "github.com/cfiestas6/go-rest-shop/internal/transport/http"
	"github.com/cfiestas6/go-rest-shop/internal/transport/http/handler"
	"github.com/cfiestas6/go-rest-shop/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Error("db close", "error", err)
		}
	}()

	if err := db.EnsureIndexes(ctx); err != nil {
		stop()
		log.Fatalf("db indexes: %v", err)
	}

	tokens, err := auth.NewTokenService([]byte(cfg.JWTSecret))
	if err != nil {
		stop()
		log.Fatalf("token service: %v", err)
	}

	emailSender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	// Users
	userRepo := mongodb.NewUserRepository(db)
	authUsecase := usecase.NewAuthUsecase(userRepo, tokens, emailSender, logger)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Products
	productRepo := mongodb.NewProductRepository(db)
	productUsecase := usecase.NewProductUsecase(productRepo)
	productHandler := handler.NewProductHandler(productUsecase, logger)

	// Orders
	orderRepo := mongodb.NewOrderRepository(db)
	orderUsecase := usecase.NewOrderUsecase(orderRepo, productRepo)
	orderHandler := handler.NewOrderHandler(orderUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(db, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, authHandler, productHandler, orderHandler, tokens),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
