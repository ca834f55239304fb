package user

import (
	"context"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/user"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id string) (*models.User, error) {
	return uc.repo.GetByID(ctx, id)
}
