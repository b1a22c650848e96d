package appointment

import (
	"context"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/audit"
	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/events"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/localtime"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

type CancelAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *events.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	artistID uint,
	appointmentID uint,
	reason string,
) (*models.Appointment, error) {

	artist, err := uc.repo.GetArtistByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForArtist(ctx, appointmentID, artist.ID)
	if err != nil {
		return nil, err
	}

	// cancelamento libera o slot na hora: linhas canceladas ficam
	// fora das queries de conflito
	if err := domain.Cancel(ap, reason, localtime.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ArtistID: artist.ID,
		UserID:   &artist.ID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.events.Dispatch(events.Event{
		Type:        events.AppointmentCancelled,
		Appointment: ap,
		ArtistName:  artist.Name,
		ClientName:  ap.Client.Name,
	})

	return ap, nil
}
