package appointment

import (
	"context"
	"time"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

// ListFilter restringe a listagem por período e/ou status.
// Ponteiro nil = filtro ausente.
type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Status *Status
}

// Patch de campos de negócio: ponteiro nil = campo inalterado.
// Nenhum destes campos muda o intervalo, então não passa pelo
// verificador de conflito.
type Patch struct {
	Notes          *string
	Location       *string
	EstimatedPrice *float64
	DepositAmount  *float64
	DepositPaid    *bool
}

func (p Patch) IsEmpty() bool {
	return p.Notes == nil && p.Location == nil &&
		p.EstimatedPrice == nil && p.DepositAmount == nil && p.DepositPaid == nil
}

type Stats struct {
	TotalAppointments int64            `json:"total_appointments"`
	ByStatus          map[string]int64 `json:"by_status"`
	TotalRevenue      float64          `json:"total_revenue"`
	AvgDurationHours  float64          `json:"avg_duration_hours"`
}

type Repository interface {
	// -------- Artist / Client --------
	GetArtistByID(ctx context.Context, id uint) (*models.Artist, error)
	GetArtistBySlug(ctx context.Context, slug string) (*models.Artist, error)
	GetClientByID(ctx context.Context, id uint) (*models.Client, error)

	// -------- Agenda semanal --------
	ReplaceWeeklySchedule(ctx context.Context, artistID uint, windows []models.AvailabilityWindow) ([]models.AvailabilityWindow, error)
	GetWeeklySchedule(ctx context.Context, artistID uint) ([]models.AvailabilityWindow, error)
	GetWindowForDay(ctx context.Context, artistID uint, dayOfWeek int) (*models.AvailabilityWindow, error)

	// -------- Appointment (criação / conflito) --------
	// CreateAppointment tranca os agendamentos ativos do dia, checa
	// sobreposição e insere, tudo numa transação.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// RescheduleAppointment troca o intervalo com auto-exclusão: o
	// agendamento movido não conflita consigo mesmo. Falha deixa a
	// linha intocada.
	RescheduleAppointment(ctx context.Context, ap *models.Appointment, date, start, end time.Time) error

	// CountOverlapping conta agendamentos ativos cruzando [start,end)
	// no dia, excluindo excludeID quando informado. Gate consultivo;
	// o gate de escrita roda dentro das transações acima.
	CountOverlapping(ctx context.Context, artistID uint, date, start, end time.Time, excludeID *uint) (int64, error)

	// -------- Appointment (mudança de estado) --------
	GetAppointmentForArtist(ctx context.Context, appointmentID uint, artistID uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointmentFields(ctx context.Context, appointmentID uint, patch Patch) error

	// -------- Leituras --------
	ListActiveForDay(ctx context.Context, artistID uint, date time.Time) ([]models.Appointment, error)
	ListForArtist(ctx context.Context, artistID uint, f ListFilter) ([]models.Appointment, error)
	ListUpcoming(ctx context.Context, artistID uint, daysAhead int) ([]models.Appointment, error)
	GetStats(ctx context.Context, artistID uint) (*Stats, error)
}
