package chatbot

import "strings"

// Rule maps a keyword to a canned response.
type Rule struct {
	Keyword  string `json:"keyword"`
	Response string `json:"response"`
}

// DefaultRules is the built-in rule table. Declaration order is part of
// the contract: the responder answers for the earliest-declared keyword
// found in the message, so "menu" outranks "price" when both appear.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "menu", Response: "Our popular dishes include Butter Chicken, Paneer Tikka, and Biryani. Would you like to know about any specific category?"},
		{Keyword: "recommend", Response: "Based on your preferences, I recommend our Chef's Special Biryani and Chocolate Lava Cake for dessert!"},
		{Keyword: "price", Response: "Our dishes range from ₹150-₹800. Most popular items are between ₹300-₹500."},
		{Keyword: "veg", Response: "We have excellent vegetarian options including Paneer Makhani, Dal Tadka, and Veg Biryani!"},
		{Keyword: "table", Response: "We have tables for 2, 4, 6, and 8 people. Would you like me to check availability?"},
		{Keyword: "timing", Response: "We are open from 11:00 AM to 11:00 PM daily. Kitchen closes at 10:30 PM."},
	}
}

// DefaultFallback is returned when no keyword matches.
const DefaultFallback = "I'm here to help with menu recommendations, reservations, and any questions about DINE24! How can I assist you?"

// Responder answers chat messages by keyword lookup against an ordered
// rule table.
type Responder struct {
	rules    []Rule
	fallback string
}

// NewResponder creates a responder over the given rules. Empty rules
// fall back to the built-in table.
func NewResponder(rules []Rule, fallback string) *Responder {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &Responder{rules: rules, fallback: fallback}
}

// Respond lowercases the message and scans the rule table in
// declaration order, returning the response of the first rule whose
// keyword is a substring of the message. Deterministic and
// order-sensitive.
func (r *Responder) Respond(message string) string {
	lowered := strings.ToLower(message)
	for _, rule := range r.rules {
		if strings.Contains(lowered, rule.Keyword) {
			return rule.Response
		}
	}
	return r.fallback
}
