package establishment

import (
	"context"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/establishment"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type GetEstablishment struct {
	repo domain.Repository
}

func NewGetEstablishment(repo domain.Repository) *GetEstablishment {
	return &GetEstablishment{repo: repo}
}

func (uc *GetEstablishment) Execute(
	ctx context.Context,
	id string,
) (*models.Establishment, error) {

	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	domain.AttachScore(e)
	return e, nil
}
