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

// LeadRepository インターフェース。リードは作成後、
// status と admin_memo 以外は変更されない（削除もしない）
type LeadRepository interface {
	Create(ctx context.Context, tx *gorm.DB, lead *model.Lead) error
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Lead, error)
	FindByID(ctx context.Context, db *gorm.DB, leadID uuid.UUID) (*model.Lead, error)
	UpdateStatusAndMemo(ctx context.Context, tx *gorm.DB, leadID uuid.UUID, status model.LeadStatus, adminMemo *string) error
}

type gormLeadRepository struct{}

func NewGormLeadRepository() LeadRepository {
	return &gormLeadRepository{}
}

func (r *gormLeadRepository) Create(ctx context.Context, tx *gorm.DB, lead *model.Lead) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(lead)
	if result.Error != nil {
		logger.Error("Error creating lead in DB",
			"error", result.Error,
			"source", lead.Source,
		)
		return fmt.Errorf("gormLeadRepository.Create: %w", result.Error)
	}
	return nil
}

// FindAll は受付日時の降順で返します
func (r *gormLeadRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Lead, error) {
	logger := middleware.GetLogger(ctx)
	var leads []*model.Lead
	result := db.WithContext(ctx).Order("created_at DESC").Find(&leads)
	if result.Error != nil {
		logger.Error("Error finding leads in DB", "error", result.Error)
		return nil, fmt.Errorf("gormLeadRepository.FindAll: %w", result.Error)
	}
	return leads, nil
}

func (r *gormLeadRepository) FindByID(ctx context.Context, db *gorm.DB, leadID uuid.UUID) (*model.Lead, error) {
	logger := middleware.GetLogger(ctx)
	var lead model.Lead
	result := db.WithContext(ctx).Where("lead_id = ?", leadID).First(&lead)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lead by ID in DB",
			"error", result.Error,
			"lead_id", leadID.String(),
		)
		return nil, fmt.Errorf("gormLeadRepository.FindByID: %w", result.Error)
	}
	return &lead, nil
}

// UpdateStatusAndMemo は status と admin_memo の2カラムだけを更新します
func (r *gormLeadRepository) UpdateStatusAndMemo(ctx context.Context, tx *gorm.DB, leadID uuid.UUID, status model.LeadStatus, adminMemo *string) error {
	logger := middleware.GetLogger(ctx)
	updates := map[string]interface{}{
		"status":     status,
		"admin_memo": adminMemo,
	}
	result := tx.WithContext(ctx).Model(&model.Lead{}).Where("lead_id = ?", leadID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating lead in DB",
			"error", result.Error,
			"lead_id", leadID.String(),
		)
		return fmt.Errorf("gormLeadRepository.UpdateStatusAndMemo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
