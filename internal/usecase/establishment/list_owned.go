package establishment

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/auth"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/establishment"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type ListOwnedEstablishments struct {
	repo domain.Repository
}

func NewListOwnedEstablishments(repo domain.Repository) *ListOwnedEstablishments {
	return &ListOwnedEstablishments{repo: repo}
}

func (uc *ListOwnedEstablishments) Execute(
	ctx context.Context,
	principal auth.Principal,
	page int,
	limit int,
) (*SearchResult, error) {

	offset := (page - 1) * limit

	items, total, err := uc.repo.ListOwnedBy(ctx, principal.ID, offset, limit)
	if err != nil {
		return nil, err
	}

	for i := range items {
		domain.AttachScore(&items[i])
	}

	if items == nil {
		items = []models.Establishment{}
	}

	return &SearchResult{Items: items, Total: total}, nil
}
