package user

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/user"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

// AdminUpdateUserInput is the administrator's superset of the profile
// update: role and status changes are reserved to it.
type AdminUpdateUserInput struct {
	Name      *string
	AvatarURL *string
	Role      *string
	Status    *string
}

type AdminUpdateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdminUpdateUser(repo domain.Repository, dispatcher *audit.Dispatcher) *AdminUpdateUser {
	return &AdminUpdateUser{repo: repo, audit: dispatcher}
}

func (uc *AdminUpdateUser) Execute(
	ctx context.Context,
	adminID string,
	targetID string,
	input AdminUpdateUserInput,
) (*models.User, error) {

	u, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	applyProfile(u, input.Name, input.AvatarURL)
	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.Status != nil {
		u.Status = *input.Status
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return uc.repo.GetByID(ctx, u.ID)
}
