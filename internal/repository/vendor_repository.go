package repository

import (
	"context"
	"errors"
	"fmt"

	"iejimai_com/internal/middleware"
	"iejimai_com/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorRepository インターフェース
type VendorRepository interface {
	Create(ctx context.Context, tx *gorm.DB, vendor *model.Vendor) error
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Vendor, error)
	FindByID(ctx context.Context, db *gorm.DB, vendorID uuid.UUID) (*model.Vendor, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Vendor, error)
	CheckSlugExists(ctx context.Context, db *gorm.DB, slug string, excludeVendorID *uuid.UUID) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, vendor *model.Vendor) error
	Delete(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) error
}

type gormVendorRepository struct{}

func NewGormVendorRepository() VendorRepository {
	return &gormVendorRepository{}
}

func (r *gormVendorRepository) Create(ctx context.Context, tx *gorm.DB, vendor *model.Vendor) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(vendor)
	if result.Error != nil {
		logger.Error("Error creating vendor in DB",
			"error", result.Error,
			"name", vendor.Name,
		)
		return fmt.Errorf("gormVendorRepository.Create: %w", result.Error)
	}
	return nil
}

// FindAll は全業者を評価の降順で返します
func (r *gormVendorRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Vendor, error) {
	logger := middleware.GetLogger(ctx)
	var vendors []*model.Vendor
	result := db.WithContext(ctx).Order("rating DESC").Find(&vendors)
	if result.Error != nil {
		logger.Error("Error finding vendors in DB", "error", result.Error)
		return nil, fmt.Errorf("gormVendorRepository.FindAll: %w", result.Error)
	}
	return vendors, nil
}

func (r *gormVendorRepository) FindByID(ctx context.Context, db *gorm.DB, vendorID uuid.UUID) (*model.Vendor, error) {
	logger := middleware.GetLogger(ctx)
	var vendor model.Vendor
	result := db.WithContext(ctx).Where("vendor_id = ?", vendorID).First(&vendor)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vendor by ID in DB",
			"error", result.Error,
			"vendor_id", vendorID.String(),
		)
		return nil, fmt.Errorf("gormVendorRepository.FindByID: %w", result.Error)
	}
	return &vendor, nil
}

func (r *gormVendorRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Vendor, error) {
	logger := middleware.GetLogger(ctx)
	var vendor model.Vendor
	result := db.WithContext(ctx).Where("slug = ?", slug).First(&vendor)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vendor by slug in DB",
			"error", result.Error,
			"slug", slug,
		)
		return nil, fmt.Errorf("gormVendorRepository.FindBySlug: %w", result.Error)
	}
	return &vendor, nil
}

func (r *gormVendorRepository) CheckSlugExists(ctx context.Context, db *gorm.DB, slug string, excludeVendorID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Vendor{}).Where("slug = ?", slug)
	if excludeVendorID != nil {
		query = query.Where("vendor_id != ?", *excludeVendorID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking slug existence in DB",
			"error", result.Error,
			"slug", slug,
		)
		return false, fmt.Errorf("gormVendorRepository.CheckSlugExists: %w", result.Error)
	}
	return count > 0, nil
}

// Save は全項目を置き換えます（更新は常に全置換）
func (r *gormVendorRepository) Save(ctx context.Context, tx *gorm.DB, vendor *model.Vendor) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(vendor)
	if result.Error != nil {
		logger.Error("Error saving vendor in DB",
			"error", result.Error,
			"vendor_id", vendor.VendorID.String(),
		)
		return fmt.Errorf("gormVendorRepository.Save: %w", result.Error)
	}
	return nil
}

// Delete は物理削除です。子テーブル（料金プラン・FAQ）はDB側のON DELETE CASCADEで消える
func (r *gormVendorRepository) Delete(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("vendor_id = ?", vendorID).Delete(&model.Vendor{})
	if result.Error != nil {
		logger.Error("Error deleting vendor in DB",
			"error", result.Error,
			"vendor_id", vendorID.String(),
		)
		return fmt.Errorf("gormVendorRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
