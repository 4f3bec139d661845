package model

import "time"

// MenuItem represents a dish on the restaurant menu.
type MenuItem struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	OfferPrice   *float64  `json:"offer_price,omitempty"`
	Quantity     string    `json:"quantity"`
	Rating       float64   `json:"rating"`
	IsVeg        bool      `json:"is_veg"`
	OrdersPlaced int       `json:"orders_placed"`
	CreatedAt    time.Time `json:"created_at"`
}

// MenuItemRequest represents the request payload for adding a menu item.
// IsVeg is a pointer so an absent field defaults to vegetarian rather
// than false.
type MenuItemRequest struct {
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Price      FlexFloat  `json:"price"`
	OfferPrice *float64   `json:"offer_price,omitempty"`
	Quantity   FlexString `json:"quantity"`
	Rating     float64    `json:"rating,omitempty"`
	IsVeg      *bool      `json:"is_veg,omitempty"`
}
