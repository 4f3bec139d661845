package service

import (
	"context"
	"testing"
	"time"

	"dine24/internal/auth"
	"dine24/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (AuthService, *auth.Issuer) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	issuer := auth.NewIssuer([]byte("test-secret"), time.Hour)
	return NewAuthService("admin", hash, issuer, zerolog.Nop()), issuer
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, issuer := newTestAuthService(t)

	token, user, err := svc.Login(context.Background(), &model.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, model.UserSummary{ID: "admin", Username: "admin", Role: "admin"}, user)

	// the issued token embeds the admin identity
	identity, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", identity)
}

func TestAuthService_Login_Deterministic(t *testing.T) {
	svc, _ := newTestAuthService(t)

	for i := 0; i < 3; i++ {
		_, _, err := svc.Login(context.Background(), &model.LoginRequest{
			Username: "admin",
			Password: "admin123",
		})
		require.NoError(t, err)
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	svc, _ := newTestAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong username", username: "root", password: "admin123"},
		{name: "wrong password", username: "admin", password: "admin124"},
		{name: "both wrong", username: "root", password: "toor"},
		{name: "empty credentials", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, user, err := svc.Login(context.Background(), &model.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			assert.ErrorIs(t, err, model.ErrInvalidCredentials)
			assert.Empty(t, token)
			assert.Empty(t, user)
		})
	}
}
