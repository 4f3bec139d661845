package service

import (
	"context"

	"dine24/internal/auth"
	"dine24/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AdminRole is the only role the system knows.
const AdminRole = "admin"

// authService implements AuthService for the single configured admin.
type authService struct {
	adminUsername     string
	adminPasswordHash []byte
	issuer            *auth.Issuer
	logger            zerolog.Logger
}

// NewAuthService creates an auth service for the configured admin
// identity. passwordHash is a bcrypt hash.
func NewAuthService(adminUsername string, passwordHash []byte, issuer *auth.Issuer, logger zerolog.Logger) AuthService {
	return &authService{
		adminUsername:     adminUsername,
		adminPasswordHash: passwordHash,
		issuer:            issuer,
		logger:            logger.With().Str("service", "auth").Logger(),
	}
}

// Login checks the credentials against the configured admin identity
// and returns a signed token plus a user summary. The failure message
// is uniform so it leaks nothing about which part mismatched.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (string, model.UserSummary, error) {
	if req.Username != s.adminUsername {
		s.logger.Warn().Str("username", req.Username).Msg("login attempt for unknown user")
		return "", model.UserSummary{}, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(req.Password)); err != nil {
		s.logger.Warn().Str("username", req.Username).Msg("login attempt with wrong password")
		return "", model.UserSummary{}, model.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(s.adminUsername)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to issue token")
		return "", model.UserSummary{}, err
	}

	s.logger.Info().Str("username", req.Username).Msg("admin logged in")
	return token, model.UserSummary{
		ID:       s.adminUsername,
		Username: s.adminUsername,
		Role:     AdminRole,
	}, nil
}
