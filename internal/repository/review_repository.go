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

// ReviewRepository インターフェース
type ReviewRepository interface {
	Create(ctx context.Context, tx *gorm.DB, review *model.Review) error
	// FindApproved は承認済みの口コミを投稿日時の降順で返します。
	// vendorID が nil 以外のときはその業者の口コミに絞る
	FindApproved(ctx context.Context, db *gorm.DB, vendorID *uuid.UUID) ([]*model.Review, error)
	FindByID(ctx context.Context, db *gorm.DB, reviewID uuid.UUID) (*model.Review, error)
	UpdateApproval(ctx context.Context, tx *gorm.DB, reviewID uuid.UUID, isApproved bool) error
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

func (r *gormReviewRepository) Create(ctx context.Context, tx *gorm.DB, review *model.Review) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(review)
	if result.Error != nil {
		logger.Error("Error creating review in DB", "error", result.Error)
		return fmt.Errorf("gormReviewRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReviewRepository) FindApproved(ctx context.Context, db *gorm.DB, vendorID *uuid.UUID) ([]*model.Review, error) {
	logger := middleware.GetLogger(ctx)
	var reviews []*model.Review
	query := db.WithContext(ctx).Where("is_approved = ?", true).Order("created_at DESC")
	if vendorID != nil {
		query = query.Where("vendor_id = ?", *vendorID)
	}
	result := query.Find(&reviews)
	if result.Error != nil {
		logger.Error("Error finding approved reviews in DB", "error", result.Error)
		return nil, fmt.Errorf("gormReviewRepository.FindApproved: %w", result.Error)
	}
	return reviews, nil
}

func (r *gormReviewRepository) FindByID(ctx context.Context, db *gorm.DB, reviewID uuid.UUID) (*model.Review, error) {
	logger := middleware.GetLogger(ctx)
	var review model.Review
	result := db.WithContext(ctx).Where("review_id = ?", reviewID).First(&review)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding review by ID in DB",
			"error", result.Error,
			"review_id", reviewID.String(),
		)
		return nil, fmt.Errorf("gormReviewRepository.FindByID: %w", result.Error)
	}
	return &review, nil
}

func (r *gormReviewRepository) UpdateApproval(ctx context.Context, tx *gorm.DB, reviewID uuid.UUID, isApproved bool) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Review{}).Where("review_id = ?", reviewID).Update("is_approved", isApproved)
	if result.Error != nil {
		logger.Error("Error updating review approval in DB",
			"error", result.Error,
			"review_id", reviewID.String(),
		)
		return fmt.Errorf("gormReviewRepository.UpdateApproval: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
