package establishment

import (
	"context"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/establishment"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type SearchResult struct {
	Items []models.Establishment

	// Total counts matches before the minRating cut; totalPages derives
	// from it, so a minRating page may carry fewer than limit items.
	Total int64
}

type SearchEstablishments struct {
	repo domain.Repository
}

func NewSearchEstablishments(repo domain.Repository) *SearchEstablishments {
	return &SearchEstablishments{repo: repo}
}

func (uc *SearchEstablishments) Execute(
	ctx context.Context,
	filter domain.SearchFilter,
	page int,
	limit int,
) (*SearchResult, error) {

	offset := (page - 1) * limit

	items, total, err := uc.repo.Search(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	for i := range items {
		domain.AttachScore(&items[i])
	}

	// minRating is applied to the fetched page, after pagination. The
	// page shrinks instead of being refilled; kept for compatibility
	// with existing clients. The cut compares the unrounded mean, not
	// the one-decimal display score.
	if filter.MinRating != nil {
		filtered := items[:0]
		for _, e := range items {
			mean := domain.Mean(ratingsOf(&e))
			if mean != nil && *mean >= *filter.MinRating {
				filtered = append(filtered, e)
			}
		}
		items = filtered
	}

	if items == nil {
		items = []models.Establishment{}
	}

	return &SearchResult{Items: items, Total: total}, nil
}

func ratingsOf(e *models.Establishment) []int {
	ratings := make([]int, 0, len(e.Reviews))
	for _, rv := range e.Reviews {
		ratings = append(ratings, rv.Rating)
	}
	return ratings
}
