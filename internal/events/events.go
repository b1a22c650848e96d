package events

import (
	"time"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

// Eventos de domínio emitidos para o colaborador de notificação.
// Entrega, template e retry são responsabilidade dele, não nossa.

type Type string

const (
	AppointmentCreated     Type = "appointment_created"
	AppointmentRescheduled Type = "appointment_rescheduled"
	AppointmentCancelled   Type = "appointment_cancelled"
	AppointmentCompleted   Type = "appointment_completed"
	AppointmentNoShow      Type = "appointment_no_show"
)

type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`

	// registro completo + identidade de exibição, suficiente para o
	// colaborador montar a mensagem sem consultar o banco
	Appointment *models.Appointment `json:"appointment"`
	ArtistName  string              `json:"artist_name"`
	ClientName  string              `json:"client_name"`
}
