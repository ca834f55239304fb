package user

import (
	"context"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/user"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type ListResult struct {
	Items []models.User
	Total int64
}

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(
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
		items = []models.User{}
	}

	return &ListResult{Items: items, Total: total}, nil
}
