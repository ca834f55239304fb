package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/review"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(
	ctx context.Context,
	rv *models.Review,
) error {

	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		// The composite unique index catches the duplicate that raced
		// past FindByAuthorAndEstablishment.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.Conflict(
				"review_already_exists",
				"Você já avaliou este estabelecimento. Use PUT para atualizar sua avaliação.",
			)
		}
		return err
	}
	return nil
}

func (r *ReviewGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Review, error) {

	var rv models.Review
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&rv, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound(
				"review_not_found",
				"Avaliação não encontrada.",
			)
		}
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) FindByAuthorAndEstablishment(
	ctx context.Context,
	authorID string,
	establishmentID string,
) (*models.Review, error) {

	var rv models.Review
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND establishment_id = ?", authorID, establishmentID).
		First(&rv).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) Update(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Review{}, "id = ?", id).Error
}

func (r *ReviewGormRepository) List(
	ctx context.Context,
	filter domain.ListFilter,
	offset int,
	limit int,
) ([]models.Review, int64, error) {

	query := r.db.WithContext(ctx).Model(&models.Review{})

	if filter.EstablishmentID != "" {
		query = query.Where("establishment_id = ?", filter.EstablishmentID)
	}
	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}
	if filter.MaxRating != nil {
		query = query.Where("rating <= ?", *filter.MaxRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Review
	err := query.
		Preload("Author").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *ReviewGormRepository) RatingsFor(
	ctx context.Context,
	establishmentID string,
) ([]int, error) {

	var ratings []int
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("establishment_id = ?", establishmentID).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ReviewGormRepository) EstablishmentExists(
	ctx context.Context,
	establishmentID string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Establishment{}).
		Where("id = ?", establishmentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
