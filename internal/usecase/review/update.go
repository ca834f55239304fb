package review

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	"github.com/incluiaqui/incluiaqui-api/internal/auth"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/review"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type UpdateReviewInput struct {
	Rating  *int
	Title   *string
	Comment *string
}

type UpdateReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReview(repo domain.Repository, dispatcher *audit.Dispatcher) *UpdateReview {
	return &UpdateReview{repo: repo, audit: dispatcher}
}

func (uc *UpdateReview) Execute(ctx context.Context, principal auth.Principal, id string, input UpdateReviewInput) (*models.Review, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !principal.CanMutate(r.AuthorID) {
		return nil, httperr.Forbidden("not_review_author", "Você não tem permissão para alterar esta avaliação.")
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, httperr.Validation("invalid_rating", "A nota deve estar entre 1 e 5.")
		}
		r.Rating = *input.Rating
	}
	if input.Title != nil {
		r.Title = input.Title
	}
	if input.Comment != nil {
		r.Comment = input.Comment
	}

	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &principal.ID,
		Action:   "review_updated",
		Entity:   "review",
		EntityID: &r.ID,
	})

	return uc.repo.GetByID(ctx, r.ID)
}
