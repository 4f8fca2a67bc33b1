package service

import (
	"context"
	"errors"
	"math"

	"iejimai_com/internal/middleware"
	"iejimai_com/internal/model"
	"iejimai_com/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	// CreateReview は口コミを未承認状態で登録します。承認されるまで公開一覧には出ません
	CreateReview(ctx context.Context, req *model.PostReviewRequest) (*model.Review, error)
	ListApprovedReviews(ctx context.Context, vendorID *uuid.UUID) ([]*model.Review, error)
	SetApproval(ctx context.Context, reviewID uuid.UUID, isApproved bool) (*model.Review, error)
}

type reviewService struct {
	db         *gorm.DB
	reviewRepo repository.ReviewRepository
}

func NewReviewService(db *gorm.DB, reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{db: db, reviewRepo: reviewRepo}
}

func (s *reviewService) CreateReview(ctx context.Context, req *model.PostReviewRequest) (*model.Review, error) {
	logger := middleware.GetLogger(ctx)

	review := &model.Review{
		ReviewID:   uuid.New(),
		VendorID:   req.VendorID,
		AreaSlug:   req.AreaSlug,
		Nickname:   &req.Nickname,
		Rating:     req.Rating,
		Body:       &req.Body,
		IsApproved: false, // 投稿側の指定値は信用しない
	}

	if err := s.reviewRepo.Create(ctx, s.db, review); err != nil {
		logger.Error("Failed to create review", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "口コミの登録に失敗しました。", "", err)
	}
	return review, nil
}

func (s *reviewService) ListApprovedReviews(ctx context.Context, vendorID *uuid.UUID) ([]*model.Review, error) {
	logger := middleware.GetLogger(ctx)
	reviews, err := s.reviewRepo.FindApproved(ctx, s.db, vendorID)
	if err != nil {
		logger.Error("Failed to list approved reviews", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "口コミの取得に失敗しました。", "", err)
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}
	return reviews, nil
}

func (s *reviewService) SetApproval(ctx context.Context, reviewID uuid.UUID, isApproved bool) (*model.Review, error) {
	logger := middleware.GetLogger(ctx)

	if err := s.reviewRepo.UpdateApproval(ctx, s.db, reviewID, isApproved); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to update review approval", "error", err, "review_id", reviewID.String())
		return nil, model.ErrInternalServer
	}

	review, err := s.reviewRepo.FindByID(ctx, s.db, reviewID)
	if err != nil {
		logger.Error("Failed to reload review after approval update", "error", err, "review_id", reviewID.String())
		return nil, err
	}
	return review, nil
}

// DisplayRating は承認済み口コミの平均評価を小数第1位で丸めて返します。
// 口コミが1件も無い場合は基準評価をそのまま返します。
// 評価未入力（null）の口コミも件数には含めます。
func DisplayRating(baseline float64, reviews []*model.Review) float64 {
	if len(reviews) == 0 {
		return baseline
	}
	var sum float64
	for _, r := range reviews {
		if r.Rating != nil {
			sum += float64(*r.Rating)
		}
	}
	mean := sum / float64(len(reviews))
	return math.Round(mean*10) / 10
}
