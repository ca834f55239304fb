package establishment

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type Repository interface {
	// -------- Establishment --------
	Create(
		ctx context.Context,
		e *models.Establishment,
	) error

	// GetByID loads the establishment with its reviews and owner.
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Establishment, error)

	GetByGooglePlaceID(
		ctx context.Context,
		placeID string,
	) (*models.Establishment, error)

	Update(
		ctx context.Context,
		e *models.Establishment,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	// -------- Listing --------
	Search(
		ctx context.Context,
		filter SearchFilter,
		offset int,
		limit int,
	) ([]models.Establishment, int64, error)

	ListOwnedBy(
		ctx context.Context,
		ownerID string,
		offset int,
		limit int,
	) ([]models.Establishment, int64, error)
}
