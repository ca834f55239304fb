package review

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	"github.com/incluiaqui/incluiaqui-api/internal/auth"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/review"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
)

type DeleteReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReview(repo domain.Repository, dispatcher *audit.Dispatcher) *DeleteReview {
	return &DeleteReview{repo: repo, audit: dispatcher}
}

func (uc *DeleteReview) Execute(ctx context.Context, principal auth.Principal, id string) error {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !principal.CanMutate(r.AuthorID) {
		return httperr.Forbidden("not_review_author", "Você não tem permissão para excluir esta avaliação.")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &principal.ID,
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: &id,
	})

	return nil
}
