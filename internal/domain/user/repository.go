package user

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

// ListFilter narrows the admin user listing.
type ListFilter struct {
	// Search matches name or e-mail, case-insensitively.
	Search string
	Role   string
	Status string
}

type Repository interface {
	GetByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	Update(
		ctx context.Context,
		u *models.User,
	) error

	// Delete removes the account; establishments and reviews owned by
	// it go with it through the foreign keys.
	Delete(
		ctx context.Context,
		id string,
	) error

	List(
		ctx context.Context,
		filter ListFilter,
		offset int,
		limit int,
	) ([]models.User, int64, error)
}
