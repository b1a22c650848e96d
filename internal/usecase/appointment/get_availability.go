package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/localtime"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

// ===============================
// Slots disponíveis do dia
// ===============================

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

type AvailabilityResult struct {
	Date  string            `json:"date"`
	Slots []domain.TimeSlot `json:"slots"`
}

// Execute calcula os slots livres do artista na data, para a duração
// pedida. Dia sem janela cadastrada ou janela inativa devolve lista
// vazia, não erro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	artistID uint,
	dateStr string,
	durationHours float64,
) (*AvailabilityResult, error) {

	artist, err := uc.repo.GetArtistByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return uc.forArtist(ctx, artist, dateStr, durationHours)
}

// ExecuteBySlug é a variante pública: resolve o artista pelo slug do
// perfil antes de calcular.
func (uc *GetAvailability) ExecuteBySlug(
	ctx context.Context,
	slug string,
	dateStr string,
	durationHours float64,
) (*AvailabilityResult, error) {

	artist, err := uc.repo.GetArtistBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return uc.forArtist(ctx, artist, dateStr, durationHours)
}

func (uc *GetAvailability) forArtist(
	ctx context.Context,
	artist *models.Artist,
	dateStr string,
	durationHours float64,
) (*AvailabilityResult, error) {

	if durationHours <= 0 {
		return nil, domain.ErrValidation("duração deve ser maior que zero")
	}

	date, err := localtime.ParseDate(dateStr)
	if err != nil {
		return nil, domain.ErrValidation("data inválida, use o formato YYYY-MM-DD")
	}

	result := &AvailabilityResult{
		Date:  dateStr,
		Slots: []domain.TimeSlot{},
	}

	window, err := uc.repo.GetWindowForDay(ctx, artist.ID, int(date.Weekday()))
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return result, nil
		}
		return nil, err
	}

	busyAps, err := uc.repo.ListActiveForDay(ctx, artist.ID, date)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationHours * float64(time.Hour))
	result.Slots = domain.GenerateSlots(window, date, duration, domain.BusyIntervals(busyAps))
	return result, nil
}
