package model

import "time"

// Reservation statuses
const (
	ReservationStatusConfirmed = "confirmed"
)

// DefaultReservationPurpose is applied when the form omits a purpose.
const DefaultReservationPurpose = "dining"

// ReservationItem is a pre-ordered dish attached to a reservation.
type ReservationItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Reservation represents a confirmed table reservation.
type Reservation struct {
	ID          int64             `json:"id"`
	FullName    string            `json:"full_name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	NumPeople   int               `json:"num_people"`
	ArrivalDate string            `json:"arrival_date"`
	ArrivalTime string            `json:"arrival_time"`
	Purpose     string            `json:"purpose"`
	TableNumber *int              `json:"table_number,omitempty"`
	Status      string            `json:"status"`
	TotalAmount float64           `json:"total_amount"`
	OrderItems  []ReservationItem `json:"order_items"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ReservationRequest represents the request payload for creating a reservation.
type ReservationRequest struct {
	FullName    string            `json:"full_name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	NumPeople   FlexInt           `json:"num_people"`
	ArrivalDate string            `json:"arrival_date"`
	ArrivalTime string            `json:"arrival_time"`
	Purpose     string            `json:"purpose,omitempty"`
	TableNumber *int              `json:"table_number,omitempty"`
	TotalAmount FlexFloat         `json:"total_amount,omitempty"`
	OrderItems  []ReservationItem `json:"order_items,omitempty"`
}
