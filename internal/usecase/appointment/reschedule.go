package appointment

import (
	"context"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/audit"
	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/events"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

type RescheduleAppointmentInput struct {
	ArtistID      uint
	AppointmentID uint

	Date      string
	StartTime string
	EndTime   string
}

type RescheduleAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *events.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	artist, err := uc.repo.GetArtistByID(ctx, in.ArtistID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForArtist(ctx, in.AppointmentID, artist.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	date, start, end, err := parseInterval(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	if err := checkMinAdvance(artist, start); err != nil {
		return nil, err
	}

	window, werr := uc.repo.GetWindowForDay(ctx, artist.ID, int(date.Weekday()))
	if werr != nil || !domain.WithinWindow(window, date, start, end) {
		return nil, domain.ErrSlotUnavailable("fora do horário de atendimento do artista")
	}

	// pré-checagem consultiva com auto-exclusão: o agendamento movido
	// não conflita consigo mesmo
	free, err := domain.IsSlotAvailable(ctx, uc.repo, artist.ID, date, start, end, &ap.ID)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, domain.ErrSlotUnavailable("já existe um agendamento no novo horário")
	}

	// em caso de conflito dentro da transação a linha fica intocada
	if err := uc.repo.RescheduleAppointment(ctx, ap, date, start, end); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ArtistID: artist.ID,
		UserID:   &artist.ID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.events.Dispatch(events.Event{
		Type:        events.AppointmentRescheduled,
		Appointment: ap,
		ArtistName:  artist.Name,
		ClientName:  ap.Client.Name,
	})

	return ap, nil
}
