package appointment

import (
	"context"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/audit"
	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/events"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/localtime"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

type CompleteAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *events.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	artistID uint,
	appointmentID uint,
	finalPrice *float64,
	notes *string,
) (*models.Appointment, error) {

	artist, err := uc.repo.GetArtistByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForArtist(ctx, appointmentID, artist.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap, finalPrice, notes, localtime.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ArtistID: artist.ID,
		UserID:   &artist.ID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.events.Dispatch(events.Event{
		Type:        events.AppointmentCompleted,
		Appointment: ap,
		ArtistName:  artist.Name,
		ClientName:  ap.Client.Name,
	})

	return ap, nil
}
