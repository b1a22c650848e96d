package appointment

import (
	"context"
	"time"
)

// IsSlotAvailable é o gate consultivo de conflito: true sse nenhum
// agendamento ativo cruza o intervalo. Em mutações use os métodos
// transacionais do Repository — esta chamada e a escrita não são
// atômicas entre si.
func IsSlotAvailable(
	ctx context.Context,
	repo Repository,
	artistID uint,
	date, start, end time.Time,
	excludeID *uint,
) (bool, error) {

	count, err := repo.CountOverlapping(ctx, artistID, date, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
