package user

import (
	"context"
	"strings"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/user"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

// UpdateProfileInput carries only what the caller sent; nil fields leave
// the stored value untouched. An empty AvatarURL clears the avatar.
type UpdateProfileInput struct {
	Name      *string
	AvatarURL *string
}

type UpdateProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateProfile(repo domain.Repository, dispatcher *audit.Dispatcher) *UpdateProfile {
	return &UpdateProfile{repo: repo, audit: dispatcher}
}

func (uc *UpdateProfile) Execute(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfile(u, input.Name, input.AvatarURL)

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "user_profile_updated",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return uc.repo.GetByID(ctx, u.ID)
}

func applyProfile(u *models.User, name, avatarURL *string) {
	if name != nil {
		u.Name = strings.TrimSpace(*name)
	}
	if avatarURL != nil {
		if *avatarURL == "" {
			u.AvatarURL = nil
		} else {
			u.AvatarURL = avatarURL
		}
	}
}
