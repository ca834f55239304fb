package review

import (
	"context"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/review"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type ListResult struct {
	Items []models.Review
	Total int64
}

type ListReviews struct {
	repo domain.Repository
}

func NewListReviews(repo domain.Repository) *ListReviews {
	return &ListReviews{repo: repo}
}

func (uc *ListReviews) Execute(
	ctx context.Context,
	filter domain.ListFilter,
	page int,
	limit int,
) (*ListResult, error) {

	offset := (page - 1) * limit

	items, total, err := uc.repo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Review{}
	}

	return &ListResult{Items: items, Total: total}, nil
}
