package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/user"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).
		First(&u, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound(
				"user_not_found",
				"Usuário não encontrado.",
			)
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) Update(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	// ON DELETE CASCADE on establishments and reviews takes the
	// account's content down with it.
	return r.db.WithContext(ctx).
		Delete(&models.User{}, "id = ?", id).Error
}

func (r *UserGormRepository) List(
	ctx context.Context,
	filter domain.ListFilter,
	offset int,
	limit int,
) ([]models.User, int64, error) {

	query := r.db.WithContext(ctx).Model(&models.User{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.User
	err := query.
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
var _ domain.Repository = (*UserGormRepository)(nil)
