package appointment

import (
	"context"
	"math"
	"time"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/audit"
	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/events"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/localtime"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ArtistID uint
	ClientID uint

	// proposta aceita que originou o agendamento (opcional, opaco)
	ProposalID *uint

	Date      string // "2006-01-02"
	StartTime string // "15:04"
	EndTime   string // "15:04"

	// opcional; quando informado deve bater com EndTime - StartTime
	DurationHours float64

	EstimatedPrice float64
	DepositAmount  float64
	Notes          string
	Location       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *events.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	artist, err := uc.repo.GetArtistByID(ctx, in.ArtistID)
	if err != nil {
		return nil, err
	}

	date, start, end, err := parseInterval(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	durationHours := domain.DurationHours(start, end)
	if in.DurationHours != 0 && math.Abs(in.DurationHours-durationHours) > 1.0/60.0 {
		return nil, domain.ErrValidation("duração informada não bate com o intervalo")
	}

	if err := checkMinAdvance(artist, start); err != nil {
		return nil, err
	}

	// dentro da janela do dia (e fora da pausa)
	window, werr := uc.repo.GetWindowForDay(ctx, artist.ID, int(date.Weekday()))
	if werr != nil || !domain.WithinWindow(window, date, start, end) {
		return nil, domain.ErrSlotUnavailable("fora do horário de atendimento do artista")
	}

	// pré-checagem consultiva: falha cedo sem abrir transação.
	// O gate definitivo roda dentro de CreateAppointment.
	free, err := domain.IsSlotAvailable(ctx, uc.repo, artist.ID, date, start, end, nil)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, domain.ErrSlotUnavailable("já existe um agendamento nesse horário")
	}

	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ArtistID:       artist.ID,
		ClientID:       client.ID,
		ProposalID:     in.ProposalID,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		DurationHours:  durationHours,
		Status:         string(domain.InitialStatus()),
		EstimatedPrice: in.EstimatedPrice,
		DepositAmount:  in.DepositAmount,
		Notes:          in.Notes,
		Location:       in.Location,
	}

	// gate de conflito roda dentro da transação do repositório
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ArtistID: artist.ID,
		UserID:   &artist.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.events.Dispatch(events.Event{
		Type:        events.AppointmentCreated,
		Appointment: ap,
		ArtistName:  artist.Name,
		ClientName:  client.Name,
	})

	return ap, nil
}

// ======================================================
// HELPERS (compartilhados pelos use cases de intervalo)
// ======================================================

func parseInterval(dateStr, startStr, endStr string) (date, start, end time.Time, err error) {
	date, perr := localtime.ParseDate(dateStr)
	if perr != nil {
		return date, start, end, domain.ErrValidation("data inválida, use o formato 2006-01-02")
	}
	date = localtime.Midnight(date)

	if !localtime.IsClock(startStr) || !localtime.IsClock(endStr) {
		return date, start, end, domain.ErrValidation("horários devem estar no formato 15:04")
	}

	start = localtime.OnDate(date, startStr)
	end = localtime.OnDate(date, endStr)
	if !start.Before(end) {
		return date, start, end, domain.ErrValidation("início deve ser antes do fim")
	}

	return date, start, end, nil
}

func checkMinAdvance(artist *models.Artist, start time.Time) error {
	minAdvance := artist.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	if start.Before(localtime.Now().Add(time.Duration(minAdvance) * time.Minute)) {
		return domain.ErrValidation("horário exige antecedência mínima")
	}
	return nil
}
