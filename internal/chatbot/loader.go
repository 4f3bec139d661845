package chatbot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// rulesFile is the on-disk rule table format.
type rulesFile struct {
	Rules    []Rule `json:"rules"`
	Fallback string `json:"fallback"`
}

// LoadRules reads a JSON rule table from filePath. Rule order in the
// file is preserved. Keywords are lowercased so matching stays
// case-insensitive regardless of how the file was written.
func LoadRules(logger zerolog.Logger, filePath string) ([]Rule, string, error) {
	logger = logger.With().Str("component", "chatbot-loader").Logger()
	logger.Info().Str("file", filePath).Msg("loading chatbot rules file")

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error().Err(err).Str("file", filePath).Msg("failed to read rules file")
		return nil, "", fmt.Errorf("failed to read rules file %s: %w", filePath, err)
	}

	var parsed rulesFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		logger.Error().Err(err).Str("file", filePath).Msg("failed to parse rules file")
		return nil, "", fmt.Errorf("failed to parse rules file %s: %w", filePath, err)
	}

	rules := make([]Rule, 0, len(parsed.Rules))
	for _, rule := range parsed.Rules {
		keyword := strings.ToLower(strings.TrimSpace(rule.Keyword))
		if keyword == "" || rule.Response == "" {
			return nil, "", fmt.Errorf("rules file %s: every rule needs a keyword and a response", filePath)
		}
		rules = append(rules, Rule{Keyword: keyword, Response: rule.Response})
	}
	if len(rules) == 0 {
		return nil, "", fmt.Errorf("rules file %s contains no rules", filePath)
	}

	logger.Info().
		Str("file", filePath).
		Int("rules_loaded", len(rules)).
		Msg("chatbot rules loaded successfully")

	return rules, parsed.Fallback, nil
}

// NewResponderFromConfig builds a responder from an optional rules
// file, falling back to the built-in table when the path is empty or
// the file cannot be used.
func NewResponderFromConfig(logger zerolog.Logger, filePath string) *Responder {
	if filePath == "" {
		return NewResponder(nil, "")
	}
	rules, fallback, err := LoadRules(logger, filePath)
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to built-in chatbot rules")
		return NewResponder(nil, "")
	}
	return NewResponder(rules, fallback)
}
