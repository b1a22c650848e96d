package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ArtistID uint   `gorm:"index" json:"artist_id"`
	Artist   Artist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"artist"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// proposta aceita que originou o agendamento (opaco para o motor)
	ProposalID *uint `json:"proposal_id"`

	// Date é sempre meia-noite local; StartTime/EndTime caem nesse dia.
	Date      time.Time `json:"date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// denormalizado: EndTime - StartTime, em horas
	DurationHours float64 `json:"duration_hours"`

	Status             string `gorm:"size:20;default:'scheduled'" json:"status"`
	CancellationReason string `gorm:"size:255" json:"cancellation_reason"`

	// metadados de negócio, repassados sem interpretação
	EstimatedPrice float64 `json:"estimated_price"`
	DepositAmount  float64 `json:"deposit_amount"`
	DepositPaid    bool    `json:"deposit_paid"`
	Notes          string  `gorm:"size:255" json:"notes"`
	Location       string  `gorm:"size:255" json:"location"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
