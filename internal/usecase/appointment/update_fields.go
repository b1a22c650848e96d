package appointment

import (
	"context"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/audit"
	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

// ===============================
// Atualização parcial (campos de negócio)
// ===============================

type UpdateAppointmentFields struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentFields(repo domain.Repository, audit *audit.Dispatcher) *UpdateAppointmentFields {
	return &UpdateAppointmentFields{repo: repo, audit: audit}
}

func (uc *UpdateAppointmentFields) Execute(
	ctx context.Context,
	artistID uint,
	appointmentID uint,
	patch domain.Patch,
) (*models.Appointment, error) {

	artist, err := uc.repo.GetArtistByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForArtist(ctx, appointmentID, artist.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanPatch(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return nil, domain.ErrValidation("nenhum campo para atualizar")
	}

	if err := uc.repo.UpdateAppointmentFields(ctx, ap.ID, patch); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ArtistID: artist.ID,
		UserID:   &artist.ID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointmentForArtist(ctx, ap.ID, artist.ID)
}
