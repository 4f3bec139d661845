package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponder_Respond(t *testing.T) {
	r := NewResponder(nil, "")

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "keyword match",
			message: "show me the menu please",
			want:    DefaultRules()[0].Response,
		},
		{
			name:    "case insensitive",
			message: "What VEG options do you have?",
			want:    DefaultRules()[3].Response,
		},
		{
			name:    "earliest declared keyword wins when multiple match",
			message: "what is the price of the menu",
			want:    DefaultRules()[0].Response, // menu declared before price
		},
		{
			name:    "substring inside a word still matches",
			message: "any recommendation?",
			want:    DefaultRules()[1].Response,
		},
		{
			name:    "no match falls back",
			message: "hello there",
			want:    DefaultFallback,
		},
		{
			name:    "empty message falls back",
			message: "",
			want:    DefaultFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Respond(tt.message))
		})
	}
}

func TestResponder_CustomRulesKeepOrder(t *testing.T) {
	r := NewResponder([]Rule{
		{Keyword: "b", Response: "second letter"},
		{Keyword: "a", Response: "first letter"},
	}, "nothing")

	// both keywords appear; declaration order decides
	assert.Equal(t, "second letter", r.Respond("ab"))
	assert.Equal(t, "first letter", r.Respond("cat"))
	assert.Equal(t, "nothing", r.Respond("xyz"))
}
