package dto

import "time"

type AppointmentListDTO struct {
	ID             uint       `json:"id"`
	Date           string     `json:"date"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	DurationHours  float64    `json:"duration_hours"`
	Status         string     `json:"status"`
	ClientName     string     `json:"client_name"`
	EstimatedPrice float64    `json:"estimated_price"`
	DepositPaid    bool       `json:"deposit_paid"`
	Location       string     `json:"location,omitempty"`
	ConfirmedAt    *time.Time `json:"confirmed_at,omitempty"`
}
