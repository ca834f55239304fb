package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/user"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
)

type ChangePassword struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangePassword(repo domain.Repository, dispatcher *audit.Dispatcher) *ChangePassword {
	return &ChangePassword{repo: repo, audit: dispatcher}
}

func (uc *ChangePassword) Execute(ctx context.Context, userID, currentPassword, newPassword string) error {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return httperr.Validation(
			"incorrect_current_password",
			"Senha atual incorreta.",
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)

	if err := uc.repo.Update(ctx, u); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "user_password_changed",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return nil
}
