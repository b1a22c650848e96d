package models

import "time"

// AvailabilityWindow é a janela recorrente de um artista para um
// dia da semana (0 = domingo). Horários são strings "15:04" em
// wall-clock local, sem fuso.
//
// No máximo uma linha por (artist_id, day_of_week): a agenda
// semanal é sempre substituída por inteiro (7 dias de uma vez).
type AvailabilityWindow struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ArtistID uint `gorm:"index:idx_availability_artist_day" json:"artist_id"`

	DayOfWeek int `gorm:"index:idx_availability_artist_day" json:"day_of_week"`

	IsAvailable bool   `json:"is_available"`
	StartTime   string `gorm:"size:5" json:"start_time"`
	EndTime     string `gorm:"size:5" json:"end_time"`

	// pausa opcional dentro da janela
	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
