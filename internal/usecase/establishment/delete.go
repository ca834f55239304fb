package establishment

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	"github.com/incluiaqui/incluiaqui-api/internal/auth"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/establishment"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
)

type DeleteEstablishment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteEstablishment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteEstablishment {
	return &DeleteEstablishment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteEstablishment) Execute(
	ctx context.Context,
	principal auth.Principal,
	id string,
) error {

	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !principal.CanMutate(e.OwnerID) {
		return httperr.Forbidden(
			"not_establishment_owner",
			"Você não tem permissão para deletar este estabelecimento.",
		)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &principal.ID,
		Action:   "establishment_deleted",
		Entity:   "establishment",
		EntityID: &id,
	})

	return nil
}
