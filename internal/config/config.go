package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSecretKey is the demo fallback signing key used when
// JWT_SECRET is unset. Deliberately weak; Load flags it so the caller
// can log a warning.
const DefaultSecretKey = "dine24-secret-key-2024"

const defaultAdminPassword = "admin123"

// Config holds all application configuration.
type Config struct {
	Server         ServerConfig
	Logger         LoggerConfig
	Auth           AuthConfig
	RateLimit      RateLimitConfig
	Analytics      AnalyticsConfig
	Chatbot        ChatbotConfig
	SeedSampleData bool
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds admin credential and token configuration.
type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string // bcrypt; empty means HashDefaultPassword must fill it
	SecretKey         string
	TokenTTL          time.Duration

	// UsingDefaultSecret is true when no JWT_SECRET was provided and the
	// insecure demo fallback is in effect.
	UsingDefaultSecret bool
	// UsingDefaultPassword is true when no ADMIN_PASSWORD_HASH was
	// provided and the demo admin password is in effect.
	UsingDefaultPassword bool
}

// RateLimitConfig holds per-IP rate limit settings for the public
// login and chat endpoints.
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// AnalyticsConfig holds the illustrative dashboard values that are not
// derived from stored data.
type AnalyticsConfig struct {
	PopularDishes        []string
	PeakHours            []string
	CustomerSatisfaction float64
}

// ChatbotConfig holds chat responder settings.
type ChatbotConfig struct {
	RulesFile string // optional JSON rules file; empty uses built-ins
}

// Load loads configuration from environment variables. A .env file in
// the working directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			SecretKey:         getEnv("JWT_SECRET", ""),
			TokenTTL:          time.Duration(getEnvAsInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RPS:     5,
			Burst:   getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
		Analytics: AnalyticsConfig{
			PopularDishes:        getEnvAsList("ANALYTICS_POPULAR_DISHES", []string{"Biryani", "Butter Chicken", "Paneer Tikka"}),
			PeakHours:            getEnvAsList("ANALYTICS_PEAK_HOURS", []string{"7:00 PM - 9:00 PM"}),
			CustomerSatisfaction: 4.5,
		},
		Chatbot: ChatbotConfig{
			RulesFile: getEnv("CHATBOT_RULES_FILE", ""),
		},
		SeedSampleData: getEnvAsBool("SEED_SAMPLE_DATA", true),
	}

	if cfg.Auth.SecretKey == "" {
		cfg.Auth.SecretKey = DefaultSecretKey
		cfg.Auth.UsingDefaultSecret = true
	}
	if cfg.Auth.AdminPasswordHash == "" {
		cfg.Auth.UsingDefaultPassword = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DefaultAdminPassword returns the demo admin password used when no
// hash is configured. Kept behind a function so it never ends up in a
// response or log by accident.
func DefaultAdminPassword() string {
	return defaultAdminPassword
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.AdminUsername == "" {
		return fmt.Errorf("admin username is required")
	}

	if c.Auth.SecretKey == "" {
		return fmt.Errorf("secret key is required")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.RateLimit.Enabled && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1")
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsList retrieves a comma-separated environment variable or returns a default value.
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
