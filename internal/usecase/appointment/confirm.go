package appointment

import (
	"context"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/audit"
	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/localtime"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmAppointment(repo domain.Repository, audit *audit.Dispatcher) *ConfirmAppointment {
	return &ConfirmAppointment{repo: repo, audit: audit}
}

func (uc *ConfirmAppointment) Execute(
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

	if err := domain.Confirm(ap, localtime.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ArtistID: artist.ID,
		UserID:   &artist.ID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
