package service

import (
	"context"

	"dine24/internal/model"

	"github.com/rs/zerolog"
)

// emailService implements EmailService as a stub: sends nothing, logs
// the would-be delivery, always acknowledges.
type emailService struct {
	logger zerolog.Logger
}

// NewEmailService creates the confirmation email stub.
func NewEmailService(logger zerolog.Logger) EmailService {
	return &emailService{
		logger: logger.With().Str("service", "email").Logger(),
	}
}

// SendConfirmation logs the reservation confirmation instead of
// delivering it. There is no delivery confirmation and no retry.
func (s *emailService) SendConfirmation(ctx context.Context, req *model.EmailRequest) error {
	event := s.logger.Info().
		Str("to", req.To).
		Str("subject", req.Subject).
		Str("template", "reservation_confirmation")
	if req.To == "" {
		event = s.logger.Warn().Str("subject", req.Subject).Str("reason", "no recipient")
	}
	event.Msg("confirmation email sent (stub)")
	return nil
}
