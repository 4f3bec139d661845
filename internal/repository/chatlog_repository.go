package repository

import (
	"context"
	"fmt"
	"time"

	"dine24/internal/model"
	"dine24/internal/store"

	"github.com/rs/zerolog"
)

// chatLogRepository implements ChatLogRepository over the in-memory store.
type chatLogRepository struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewChatLogRepository creates a store-backed chat log repository.
func NewChatLogRepository(s *store.Store, logger zerolog.Logger) ChatLogRepository {
	return &chatLogRepository{
		store:  s,
		logger: logger.With().Str("repository", "chatlog").Logger(),
	}
}

// Append stores one chat exchange.
func (r *chatLogRepository) Append(ctx context.Context, entry model.ChatLogEntry) (model.ChatLogEntry, error) {
	rec := store.Record{
		"user_message": entry.UserMessage,
		"bot_response": entry.BotResponse,
	}

	id, createdAt, err := r.store.Insert(store.CollectionChatLogs, rec)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to append chat log entry")
		return model.ChatLogEntry{}, fmt.Errorf("failed to append chat log entry: %w", err)
	}

	entry.ID = id
	entry.CreatedAt = createdAt
	return entry, nil
}

// All retrieves every log entry in insertion order.
func (r *chatLogRepository) All(ctx context.Context) ([]model.ChatLogEntry, error) {
	records, err := r.store.All(store.CollectionChatLogs)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list chat log entries")
		return nil, fmt.Errorf("failed to list chat log entries: %w", err)
	}

	entries := make([]model.ChatLogEntry, 0, len(records))
	for _, rec := range records {
		var entry model.ChatLogEntry
		entry.ID, _ = rec[store.FieldID].(int64)
		entry.CreatedAt, _ = rec[store.FieldCreatedAt].(time.Time)
		entry.UserMessage, _ = rec["user_message"].(string)
		entry.BotResponse, _ = rec["bot_response"].(string)
		entries = append(entries, entry)
	}
	return entries, nil
}
