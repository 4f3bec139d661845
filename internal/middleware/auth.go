package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dine24/internal/auth"

	"github.com/rs/zerolog"
)

// authFailure is the 401 envelope written by the token gate.
type authFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BearerAuth gates a handler behind a "Authorization: Bearer <token>"
// check. On success the verified identity is injected into the request
// context; the wrapped handler never runs otherwise.
func BearerAuth(issuer *auth.Issuer, logger zerolog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing authorization header")
				writeAuthFailure(w, "Token is missing")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("malformed authorization header")
				writeAuthFailure(w, "Token is invalid")
				return
			}

			identity, err := issuer.Verify(token)
			if err != nil {
				event := logger.Warn().Str("path", r.URL.Path)
				if errors.Is(err, auth.ErrTokenExpired) {
					event.Msg("expired token")
				} else {
					event.Msg("invalid token")
				}
				writeAuthFailure(w, "Token is invalid")
				return
			}

			next(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		}
	}
}

func writeAuthFailure(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(authFailure{Message: message})
}
