package repository

import (
	"context"
	"fmt"

	"iejimai_com/internal/middleware"
	"iejimai_com/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorDetailRepository は業者詳細ページの付帯情報（料金プラン・FAQ）を扱います。
// どちらのテーブルも環境によっては未作成のことがあるため、undefined_table は
// model.ErrTableAbsent に変換して返します（サービス層で空リストに潰す）
type VendorDetailRepository interface {
	FindPricePlans(ctx context.Context, db *gorm.DB, vendorID uuid.UUID) ([]*model.VendorPricePlan, error)
	FindFaqs(ctx context.Context, db *gorm.DB, vendorID uuid.UUID) ([]*model.VendorFaq, error)
}

type gormVendorDetailRepository struct{}

func NewGormVendorDetailRepository() VendorDetailRepository {
	return &gormVendorDetailRepository{}
}

func (r *gormVendorDetailRepository) FindPricePlans(ctx context.Context, db *gorm.DB, vendorID uuid.UUID) ([]*model.VendorPricePlan, error) {
	logger := middleware.GetLogger(ctx)
	var plans []*model.VendorPricePlan
	result := db.WithContext(ctx).Where("vendor_id = ?", vendorID).Order("order_index ASC").Find(&plans)
	if result.Error != nil {
		if isUndefinedTable(result.Error) {
			return nil, model.ErrTableAbsent
		}
		logger.Error("Error finding vendor price plans in DB",
			"error", result.Error,
			"vendor_id", vendorID.String(),
		)
		return nil, fmt.Errorf("gormVendorDetailRepository.FindPricePlans: %w", result.Error)
	}
	return plans, nil
}

func (r *gormVendorDetailRepository) FindFaqs(ctx context.Context, db *gorm.DB, vendorID uuid.UUID) ([]*model.VendorFaq, error) {
	logger := middleware.GetLogger(ctx)
	var faqs []*model.VendorFaq
	result := db.WithContext(ctx).Where("vendor_id = ?", vendorID).Order("order_index ASC").Find(&faqs)
	if result.Error != nil {
		if isUndefinedTable(result.Error) {
			return nil, model.ErrTableAbsent
		}
		logger.Error("Error finding vendor faqs in DB",
			"error", result.Error,
			"vendor_id", vendorID.String(),
		)
		return nil, fmt.Errorf("gormVendorDetailRepository.FindFaqs: %w", result.Error)
	}
	return faqs, nil
}
