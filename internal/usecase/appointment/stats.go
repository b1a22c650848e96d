package appointment

import (
	"context"

	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
)

type GetStats struct {
	repo domain.Repository
}

func NewGetStats(repo domain.Repository) *GetStats {
	return &GetStats{repo: repo}
}

func (uc *GetStats) Execute(ctx context.Context, artistID uint) (*domain.Stats, error) {
	artist, err := uc.repo.GetArtistByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetStats(ctx, artist.ID)
}
