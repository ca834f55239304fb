package establishment

import (
	"context"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/establishment"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type CreateEstablishmentInput struct {
	Name        string
	Description string
	Phone       string
	Category    string

	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
	ZipCode      string

	Latitude  float64
	Longitude float64

	CoverImageURL *string
	GooglePlaceID *string
}

type CreateEstablishment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateEstablishment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateEstablishment {
	return &CreateEstablishment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateEstablishment) Execute(
	ctx context.Context,
	ownerID string,
	in CreateEstablishmentInput,
) (*models.Establishment, error) {

	if err := validateCoordinates(in.Latitude, in.Longitude); err != nil {
		return nil, err
	}

	if !domain.IsValidCategory(in.Category) {
		return nil, httperr.Validation(
			"invalid_category",
			"Categoria de estabelecimento inválida.",
		)
	}

	// Fast-path dedup check. The unique index on google_place_id remains
	// the authority when two creates race.
	if in.GooglePlaceID != nil && *in.GooglePlaceID != "" {
		existing, err := uc.repo.GetByGooglePlaceID(ctx, *in.GooglePlaceID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, httperr.Conflict(
				"google_place_id_already_registered",
				"Estabelecimento já cadastrado com este Google Place ID.",
			)
		}
	}

	e := &models.Establishment{
		Name:          in.Name,
		Description:   in.Description,
		Phone:         in.Phone,
		Category:      in.Category,
		Street:        in.Street,
		Number:        in.Number,
		Neighborhood:  in.Neighborhood,
		City:          in.City,
		State:         in.State,
		ZipCode:       in.ZipCode,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		CoverImageURL: in.CoverImageURL,
		GooglePlaceID: normalizePlaceID(in.GooglePlaceID),
		OwnerID:       ownerID,
	}

	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "establishment_created",
		Entity:   "establishment",
		EntityID: &e.ID,
	})

	created, err := uc.repo.GetByID(ctx, e.ID)
	if err != nil {
		return nil, err
	}

	domain.AttachScore(created)
	return created, nil
}

func normalizePlaceID(placeID *string) *string {
	if placeID == nil || *placeID == "" {
		return nil
	}
	return placeID
}

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return httperr.Validation(
			"invalid_coordinates",
			"Latitude deve estar entre -90 e 90, longitude entre -180 e 180.",
		)
	}
	return nil
}
