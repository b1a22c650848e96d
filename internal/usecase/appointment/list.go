package appointment

import (
	"context"

	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/dto"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/localtime"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// ListAppointmentsInput carrega os filtros crus da query string.
// String vazia = filtro ausente.
type ListAppointmentsInput struct {
	From   string
	To     string
	Status string
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	artistID uint,
	input ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	artist, err := uc.repo.GetArtistByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	filter, err := buildListFilter(input)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListForArtist(ctx, artist.ID, filter)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

func buildListFilter(input ListAppointmentsInput) (domain.ListFilter, error) {
	var filter domain.ListFilter

	if input.From != "" {
		from, err := localtime.ParseDate(input.From)
		if err != nil {
			return filter, domain.ErrValidation("parâmetro from inválido, use YYYY-MM-DD")
		}
		filter.From = &from
	}

	if input.To != "" {
		to, err := localtime.ParseDate(input.To)
		if err != nil {
			return filter, domain.ErrValidation("parâmetro to inválido, use YYYY-MM-DD")
		}
		filter.To = &to
	}

	if input.From != "" && input.To != "" && filter.To.Before(*filter.From) {
		return filter, domain.ErrValidation("período inválido: to antes de from")
	}

	if input.Status != "" {
		st := domain.Status(input.Status)
		if !st.Valid() {
			return filter, domain.ErrValidation("status desconhecido: " + input.Status)
		}
		filter.Status = &st
	}

	return filter, nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:             ap.ID,
			Date:           ap.Date.Format(localtime.DateLayout),
			StartTime:      ap.StartTime,
			EndTime:        ap.EndTime,
			DurationHours:  ap.DurationHours,
			Status:         ap.Status,
			ClientName:     ap.Client.Name,
			EstimatedPrice: ap.EstimatedPrice,
			DepositPaid:    ap.DepositPaid,
			Location:       ap.Location,
			ConfirmedAt:    ap.ConfirmedAt,
		})
	}
	return out
}
