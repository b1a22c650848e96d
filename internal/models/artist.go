package models

import "time"

// Artista (tatuador) é o dono da agenda. Identidade e portfólio
// são geridos pela plataforma; aqui guardamos só o necessário
// para agendamento.
type Artist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Slug  string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	StudioAddress     string `gorm:"size:255" json:"studio_address"`
	MinAdvanceMinutes int    `gorm:"default:120" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
