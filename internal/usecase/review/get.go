package review

import (
	"context"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/review"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type GetReview struct {
	repo domain.Repository
}

func NewGetReview(repo domain.Repository) *GetReview {
	return &GetReview{repo: repo}
}

func (uc *GetReview) Execute(ctx context.Context, id string) (*models.Review, error) {
	return uc.repo.GetByID(ctx, id)
}
