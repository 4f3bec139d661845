package model

// Analytics is the admin dashboard summary. The first three fields are
// computed from stored data; the rest are illustrative display values
// sourced from configuration, not derived from the collections.
type Analytics struct {
	TotalReservations    int      `json:"total_reservations"`
	TotalMenuItems       int      `json:"total_menu_items"`
	TotalRevenue         float64  `json:"total_revenue"`
	PopularDishes        []string `json:"popular_dishes"`
	PeakHours            []string `json:"peak_hours"`
	CustomerSatisfaction float64  `json:"customer_satisfaction"`
}
