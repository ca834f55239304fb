package review

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

// ListFilter narrows review listings. Zero values impose no constraint.
type ListFilter struct {
	EstablishmentID string
	AuthorID        string
	MinRating       *int
	MaxRating       *int
}

type Repository interface {
	Create(
		ctx context.Context,
		r *models.Review,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Review, error)

	// FindByAuthorAndEstablishment backs the duplicate pre-check.
	FindByAuthorAndEstablishment(
		ctx context.Context,
		authorID string,
		establishmentID string,
	) (*models.Review, error)

	Update(
		ctx context.Context,
		r *models.Review,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	List(
		ctx context.Context,
		filter ListFilter,
		offset int,
		limit int,
	) ([]models.Review, int64, error)

	// RatingsFor returns the bare ratings of an establishment's reviews.
	RatingsFor(
		ctx context.Context,
		establishmentID string,
	) ([]int, error)

	// EstablishmentExists backs the create pre-check.
	EstablishmentExists(
		ctx context.Context,
		establishmentID string,
	) (bool, error)
}
