package repository

import (
	"context"
	"errors"
	"fmt"

	"iejimai_com/internal/middleware"
	"iejimai_com/internal/model"

	"gorm.io/gorm"
)

// AreaRepository インターフェース。エリアは読み取り専用（シードは管理外で行う）
type AreaRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Area, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Area, error)
}

type gormAreaRepository struct{}

func NewGormAreaRepository() AreaRepository {
	return &gormAreaRepository{}
}

func (r *gormAreaRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Area, error) {
	logger := middleware.GetLogger(ctx)
	var areas []*model.Area
	result := db.WithContext(ctx).Order("order_index ASC").Find(&areas)
	if result.Error != nil {
		logger.Error("Error finding areas in DB", "error", result.Error)
		return nil, fmt.Errorf("gormAreaRepository.FindAll: %w", result.Error)
	}
	return areas, nil
}

func (r *gormAreaRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Area, error) {
	logger := middleware.GetLogger(ctx)
	var area model.Area
	result := db.WithContext(ctx).Where("slug = ?", slug).First(&area)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding area by slug in DB",
			"error", result.Error,
			"slug", slug,
		)
		return nil, fmt.Errorf("gormAreaRepository.FindBySlug: %w", result.Error)
	}
	return &area, nil
}
