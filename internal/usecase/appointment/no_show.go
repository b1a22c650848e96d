package appointment

import (
	"context"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/audit"
	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/events"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

type MarkNoShow struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *events.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	artistID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	artist, err := uc.repo.GetArtistByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForArtist(ctx, appointmentID, artist.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.NoShow(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ArtistID: artist.ID,
		UserID:   &artist.ID,
		Action:   "appointment_no_show",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.events.Dispatch(events.Event{
		Type:        events.AppointmentNoShow,
		Appointment: ap,
		ArtistName:  artist.Name,
		ClientName:  ap.Client.Name,
	})

	return ap, nil
}
