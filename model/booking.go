package model

import "time"

// Booking statuses the query endpoints interpret. The column itself accepts
// whatever status the caller supplies.
const (
	BookingConfirmed = "confirmed"
	BookingActive    = "active"
	BookingCompleted = "completed"
)

type Booking struct {
	ID         string    `json:"id"`
	CarID      string    `json:"car_id"`
	UserID     string    `json:"user_id"`
	StartDate  Date      `json:"start_date"`
	EndDate    Date      `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
