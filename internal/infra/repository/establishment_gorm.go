package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/establishment"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type EstablishmentGormRepository struct {
	db *gorm.DB
}

func NewEstablishmentGormRepository(db *gorm.DB) *EstablishmentGormRepository {
	return &EstablishmentGormRepository{db: db}
}

// --------------------------------------------------
// Establishment
// --------------------------------------------------

func (r *EstablishmentGormRepository) Create(
	ctx context.Context,
	e *models.Establishment,
) error {

	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		// The unique index on google_place_id is the authority; a racing
		// create that slipped past the pre-check lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.Conflict(
				"google_place_id_already_registered",
				"Estabelecimento já cadastrado com este Google Place ID.",
			)
		}
		return err
	}
	return nil
}

func (r *EstablishmentGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Establishment, error) {

	var e models.Establishment
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.Author").
		First(&e, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound(
				"establishment_not_found",
				"Estabelecimento não encontrado.",
			)
		}
		return nil, err
	}
	return &e, nil
}

func (r *EstablishmentGormRepository) GetByGooglePlaceID(
	ctx context.Context,
	placeID string,
) (*models.Establishment, error) {

	var e models.Establishment
	err := r.db.WithContext(ctx).
		First(&e, "google_place_id = ?", placeID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EstablishmentGormRepository) Update(
	ctx context.Context,
	e *models.Establishment,
) error {

	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.Conflict(
				"google_place_id_already_registered",
				"Estabelecimento já cadastrado com este Google Place ID.",
			)
		}
		return err
	}
	return nil
}

func (r *EstablishmentGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	// Review rows go with it through the FK cascade.
	return r.db.WithContext(ctx).
		Delete(&models.Establishment{}, "id = ?", id).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *EstablishmentGormRepository) Search(
	ctx context.Context,
	filter domain.SearchFilter,
	offset int,
	limit int,
) ([]models.Establishment, int64, error) {

	query := r.db.WithContext(ctx).Model(&models.Establishment{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR description ILIKE ? OR neighborhood ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.City != "" {
		query = query.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Latitude-ascending is an acknowledged approximation of proximity
	// ordering, kept for compatibility with existing clients.
	order := "created_at DESC"
	if filter.HasCoordinates() {
		order = "latitude ASC, created_at DESC"
	}

	var items []models.Establishment
	err := query.
		Preload("Owner").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.Author").
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *EstablishmentGormRepository) ListOwnedBy(
	ctx context.Context,
	ownerID string,
	offset int,
	limit int,
) ([]models.Establishment, int64, error) {

	query := r.db.WithContext(ctx).
		Model(&models.Establishment{}).
		Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Establishment
	err := query.
		Preload("Owner").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.Author").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Compile-time check
var _ domain.Repository = (*EstablishmentGormRepository)(nil)
