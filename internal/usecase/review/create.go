package review

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	"github.com/incluiaqui/incluiaqui-api/internal/auth"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/review"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type CreateReviewInput struct {
	EstablishmentID string
	Rating          int
	Title           *string
	Comment         *string
}

type CreateReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReview(repo domain.Repository, dispatcher *audit.Dispatcher) *CreateReview {
	return &CreateReview{repo: repo, audit: dispatcher}
}

func (uc *CreateReview) Execute(ctx context.Context, principal auth.Principal, input CreateReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, httperr.Validation("invalid_rating", "A nota deve estar entre 1 e 5.")
	}

	exists, err := uc.repo.EstablishmentExists(ctx, input.EstablishmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.NotFound("establishment_not_found", "Estabelecimento não encontrado.")
	}

	existing, err := uc.repo.FindByAuthorAndEstablishment(ctx, principal.ID, input.EstablishmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.Conflict(
			"review_already_exists",
			"Você já avaliou este estabelecimento. Use PUT para atualizar sua avaliação.",
		)
	}

	r := &models.Review{
		EstablishmentID: input.EstablishmentID,
		AuthorID:        principal.ID,
		Rating:          input.Rating,
		Title:           input.Title,
		Comment:         input.Comment,
	}

	// The unique index on (author_id, establishment_id) still decides
	// concurrent submissions; the repository maps that to the same
	// conflict as the pre-check above.
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &principal.ID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &r.ID,
		Metadata: map[string]any{
			"establishmentId": input.EstablishmentID,
			"rating":          input.Rating,
		},
	})

	return uc.repo.GetByID(ctx, r.ID)
}
