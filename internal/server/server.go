// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package server wires configuration, storage, services and routes into the
// HTTP server and owns its lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v3"

	"github.com/fashionshop/api/internal/config"
	"github.com/fashionshop/api/internal/database"
	"github.com/fashionshop/api/internal/handlers"
	"github.com/fashionshop/api/internal/middleware"
	"github.com/fashionshop/api/internal/repository"
	"github.com/fashionshop/api/internal/services/auth"
	"github.com/fashionshop/api/internal/services/email"
	"github.com/fashionshop/api/internal/services/token"
)

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	setupLogger(cfg.Log.Level, cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"base_url", cfg.Server.BaseURL,
	)

	// Database (migrations run inside Open)
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
	}()

	repo := repository.New(db)

	// Services
	issuer, err := token.NewIssuer(cfg.Auth.AccessTokenSecret, cfg.Auth.RefreshTokenSecret)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}
	mailer, err := email.NewService(&cfg.SMTP, cfg.Auth.FrontendURL)
	if err != nil {
		return fmt.Errorf("failed to create mail service: %w", err)
	}
	authSvc := auth.NewService(repo, issuer, mailer)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler

	setupMiddleware(e, cfg)
	setupRoutes(e, cfg, repo, authSvc, issuer)

	return startWithGracefulShutdown(e, cfg)
}

func setupRoutes(e *echo.Echo, cfg *config.Config, repo *repository.Repository, authSvc *auth.Service, issuer *token.Issuer) {
	h := handlers.New(repo)
	ah := handlers.NewAuth(authSvc, cfg.Auth.CookieSecure)
	requireAuth := middleware.RequireAuth(issuer)

	e.GET("/health", h.Health)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", ah.Signup)
	authGroup.POST("/login", ah.Login)
	authGroup.POST("/logout", ah.Logout)
	authGroup.POST("/verify-email", ah.VerifyEmail)
	authGroup.POST("/forgot-password", ah.ForgotPassword)
	authGroup.POST("/reset-password", ah.ResetPassword, requireAuth)

	products := api.Group("/products")
	products.GET("", h.ListProducts)
	products.GET("/deleted", h.ListDeletedProducts, requireAuth)
	products.GET("/random", h.RandomProducts)
	products.GET("/:id", h.GetProduct)
	products.POST("", h.CreateProduct, requireAuth)
	products.PUT("/:id", h.UpdateProduct, requireAuth)
	products.DELETE("/:id", h.DeleteProduct, requireAuth)

	orders := api.Group("/orders", requireAuth)
	orders.GET("", h.ListOrders)
	orders.GET("/my", h.MyOrders)
	orders.POST("", h.CreateOrder)
	orders.POST("/:id/cancel", h.CancelOrder)
	orders.PUT("/:id/status", h.ChangeOrderStatus)
}

func startWithGracefulShutdown(e *echo.Echo, cfg *config.Config) error {
	errChan := make(chan error, 1)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("Server running", "url", cfg.Server.BaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("shutting down server")
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	slog.Info("server stopped")
	return nil
}
