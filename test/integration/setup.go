package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"dine24/internal/auth"
	"dine24/internal/chatbot"
	"dine24/internal/config"
	"dine24/internal/handler"
	"dine24/internal/repository"
	"dine24/internal/router"
	"dine24/internal/service"
	"dine24/internal/store"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "integration-pass"
	testSecretKey     = "integration-secret"
)

// TestApp bundles a fully wired server with the pieces tests need to
// reach behind the HTTP surface.
type TestApp struct {
	Handler http.Handler
	Store   *store.Store
	Issuer  *auth.Issuer
}

// SetupTestApp wires the full stack against a fresh in-memory store,
// the same way cmd/api does, minus the listener. Sample menu seeding
// is left to individual tests.
func SetupTestApp(t *testing.T) *TestApp {
	t.Helper()

	logger := zerolog.Nop()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	db := store.NewDefault(logger)
	reservationRepo := repository.NewReservationRepository(db, logger)
	menuRepo := repository.NewMenuRepository(db, logger)
	chatLogRepo := repository.NewChatLogRepository(db, logger)

	issuer := auth.NewIssuer([]byte(testSecretKey), time.Hour)
	responder := chatbot.NewResponder(nil, "")

	authService := service.NewAuthService(testAdminUsername, passwordHash, issuer, logger)
	reservationService := service.NewReservationService(reservationRepo, logger)
	menuService := service.NewMenuService(menuRepo, logger)
	chatService := service.NewChatService(responder, chatLogRepo, logger)
	analyticsService := service.NewAnalyticsService(reservationRepo, menuRepo, config.AnalyticsConfig{
		PopularDishes:        []string{"Butter Chicken"},
		PeakHours:            []string{"19:00-21:00"},
		CustomerSatisfaction: 4.5,
	}, logger)
	emailService := service.NewEmailService(logger)

	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService, logger),
		Reservation: handler.NewReservationHandler(reservationService, logger),
		Menu:        handler.NewMenuHandler(menuService, logger),
		Chat:        handler.NewChatHandler(chatService, logger),
		Email:       handler.NewEmailHandler(emailService, logger),
		Analytics:   handler.NewAnalyticsHandler(analyticsService, logger),
	}

	mux := router.New(handlers, issuer, config.RateLimitConfig{Enabled: false}, logger)

	return &TestApp{
		Handler: mux,
		Store:   db,
		Issuer:  issuer,
	}
}

// SeedMenu runs the startup menu seed against the app's store.
func SeedMenu(t *testing.T, app *TestApp) {
	t.Helper()

	logger := zerolog.Nop()
	menuRepo := repository.NewMenuRepository(app.Store, logger)
	menuService := service.NewMenuService(menuRepo, logger)
	if err := menuService.SeedSampleItems(context.Background()); err != nil {
		t.Fatalf("failed to seed sample menu: %v", err)
	}
}
