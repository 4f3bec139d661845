package service

import (
	"context"

	"dine24/internal/chatbot"
	"dine24/internal/model"
	"dine24/internal/repository"

	"github.com/rs/zerolog"
)

// chatService implements ChatService.
type chatService struct {
	responder *chatbot.Responder
	logRepo   repository.ChatLogRepository
	logger    zerolog.Logger
}

// NewChatService creates a new chat service.
func NewChatService(responder *chatbot.Responder, logRepo repository.ChatLogRepository, logger zerolog.Logger) ChatService {
	return &chatService{
		responder: responder,
		logRepo:   logRepo,
		logger:    logger.With().Str("service", "chat").Logger(),
	}
}

// Chat returns the canned response for the message and appends the
// exchange to the chat log. The append is fire-and-forget: a log
// failure is recorded but never fails the chat.
func (s *chatService) Chat(ctx context.Context, message string) (string, error) {
	response := s.responder.Respond(message)

	if _, err := s.logRepo.Append(ctx, model.ChatLogEntry{
		UserMessage: message,
		BotResponse: response,
	}); err != nil {
		s.logger.Error().Err(err).Msg("failed to log chat exchange")
	}

	return response, nil
}
