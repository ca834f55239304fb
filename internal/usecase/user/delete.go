package user

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/user"
)

type DeleteUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(repo domain.Repository, dispatcher *audit.Dispatcher) *DeleteUser {
	return &DeleteUser{repo: repo, audit: dispatcher}
}

func (uc *DeleteUser) Execute(ctx context.Context, adminID, targetID string) error {
	u, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, u.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return nil
}
