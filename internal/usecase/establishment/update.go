package establishment

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	"github.com/incluiaqui/incluiaqui-api/internal/auth"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/establishment"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

// UpdateEstablishmentInput carries only what the caller sent; nil fields
// leave the stored value untouched.
type UpdateEstablishmentInput struct {
	Name        *string
	Description *string
	Phone       *string
	Category    *string

	Street       *string
	Number       *string
	Neighborhood *string
	City         *string
	State        *string
	ZipCode      *string

	Latitude  *float64
	Longitude *float64

	CoverImageURL *string
}

type UpdateEstablishment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateEstablishment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateEstablishment {
	return &UpdateEstablishment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateEstablishment) Execute(
	ctx context.Context,
	principal auth.Principal,
	id string,
	in UpdateEstablishmentInput,
) (*models.Establishment, error) {

	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !principal.CanMutate(e.OwnerID) {
		return nil, httperr.Forbidden(
			"not_establishment_owner",
			"Você não tem permissão para atualizar este estabelecimento.",
		)
	}

	if in.Category != nil && !domain.IsValidCategory(*in.Category) {
		return nil, httperr.Validation(
			"invalid_category",
			"Categoria de estabelecimento inválida.",
		)
	}

	lat, lng := e.Latitude, e.Longitude
	if in.Latitude != nil {
		lat = *in.Latitude
	}
	if in.Longitude != nil {
		lng = *in.Longitude
	}
	if err := validateCoordinates(lat, lng); err != nil {
		return nil, err
	}

	applyString(&e.Name, in.Name)
	applyString(&e.Description, in.Description)
	applyString(&e.Phone, in.Phone)
	applyString(&e.Category, in.Category)
	applyString(&e.Street, in.Street)
	applyString(&e.Number, in.Number)
	applyString(&e.Neighborhood, in.Neighborhood)
	applyString(&e.City, in.City)
	applyString(&e.State, in.State)
	applyString(&e.ZipCode, in.ZipCode)
	e.Latitude = lat
	e.Longitude = lng
	if in.CoverImageURL != nil {
		e.CoverImageURL = in.CoverImageURL
	}

	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &principal.ID,
		Action:   "establishment_updated",
		Entity:   "establishment",
		EntityID: &e.ID,
	})

	domain.AttachScore(e)
	return e, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
