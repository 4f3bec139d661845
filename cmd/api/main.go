package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dine24/internal/auth"
	"dine24/internal/chatbot"
	"dine24/internal/config"
	"dine24/internal/handler"
	"dine24/internal/repository"
	"dine24/internal/router"
	"dine24/internal/service"
	"dine24/internal/store"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting DINE24 API server")

	if cfg.Auth.UsingDefaultSecret {
		logger.Warn().Msg("JWT_SECRET not set, using the insecure demo default")
	}

	// Resolve the admin password hash; the demo password is hashed at
	// startup when no hash is configured.
	passwordHash := []byte(cfg.Auth.AdminPasswordHash)
	if cfg.Auth.UsingDefaultPassword {
		logger.Warn().Msg("ADMIN_PASSWORD_HASH not set, using the demo admin password")
		passwordHash, err = bcrypt.GenerateFromPassword([]byte(config.DefaultAdminPassword()), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
	}

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the in-memory store and repositories
	db := store.NewDefault(logger)
	reservationRepo := repository.NewReservationRepository(db, logger)
	menuRepo := repository.NewMenuRepository(db, logger)
	chatLogRepo := repository.NewChatLogRepository(db, logger)

	// Initialize the token issuer and chatbot responder
	issuer := auth.NewIssuer([]byte(cfg.Auth.SecretKey), cfg.Auth.TokenTTL)
	responder := chatbot.NewResponderFromConfig(logger, cfg.Chatbot.RulesFile)

	// Initialize services
	authService := service.NewAuthService(cfg.Auth.AdminUsername, passwordHash, issuer, logger)
	reservationService := service.NewReservationService(reservationRepo, logger)
	menuService := service.NewMenuService(menuRepo, logger)
	chatService := service.NewChatService(responder, chatLogRepo, logger)
	analyticsService := service.NewAnalyticsService(reservationRepo, menuRepo, cfg.Analytics, logger)
	emailService := service.NewEmailService(logger)

	if cfg.SeedSampleData {
		if err := menuService.SeedSampleItems(ctx); err != nil {
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	// Initialize HTTP handlers and router
	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService, logger),
		Reservation: handler.NewReservationHandler(reservationService, logger),
		Menu:        handler.NewMenuHandler(menuService, logger),
		Chat:        handler.NewChatHandler(chatService, logger),
		Email:       handler.NewEmailHandler(emailService, logger),
		Analytics:   handler.NewAnalyticsHandler(analyticsService, logger),
	}
	mux := router.New(handlers, issuer, cfg.RateLimit, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
