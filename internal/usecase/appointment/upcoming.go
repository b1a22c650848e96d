package appointment

import (
	"context"

	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/dto"
)

// Janela padrão da agenda "próximos" quando a query não informa days.
const DefaultUpcomingDays = 7

type ListUpcoming struct {
	repo domain.Repository
}

func NewListUpcoming(repo domain.Repository) *ListUpcoming {
	return &ListUpcoming{repo: repo}
}

func (uc *ListUpcoming) Execute(
	ctx context.Context,
	artistID uint,
	daysAhead int,
) ([]dto.AppointmentListDTO, error) {

	artist, err := uc.repo.GetArtistByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	if daysAhead <= 0 {
		daysAhead = DefaultUpcomingDays
	}

	appointments, err := uc.repo.ListUpcoming(ctx, artist.ID, daysAhead)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}
