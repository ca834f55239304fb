package review

import (
	"context"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/review"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
)

type EstablishmentStats struct {
	repo domain.Repository
}

func NewEstablishmentStats(repo domain.Repository) *EstablishmentStats {
	return &EstablishmentStats{repo: repo}
}

func (uc *EstablishmentStats) Execute(ctx context.Context, establishmentID string) (*domain.Stats, error) {
	exists, err := uc.repo.EstablishmentExists(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.NotFound("establishment_not_found", "Estabelecimento não encontrado.")
	}

	ratings, err := uc.repo.RatingsFor(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	stats := domain.ComputeStats(ratings)
	return &stats, nil
}
