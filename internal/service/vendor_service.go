package service

import (
	"context"
	"errors"

	"iejimai_com/internal/middleware"
	"iejimai_com/internal/model"
	"iejimai_com/internal/ranking"
	"iejimai_com/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type VendorService interface {
	ListVendors(ctx context.Context, strategy ranking.Strategy) ([]model.RankedVendor, error)
	// GetVendorDetail は業者詳細（料金プラン・FAQ・承認済み口コミ・表示評価つき）を返します。
	// key はUUIDまたはslug
	GetVendorDetail(ctx context.Context, key string) (*model.VendorDetailResponse, error)
	CreateVendor(ctx context.Context, req *model.VendorRequest) (*model.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID uuid.UUID, req *model.VendorRequest) (*model.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID uuid.UUID) error
}

type vendorService struct {
	db         *gorm.DB
	vendorRepo repository.VendorRepository
	detailRepo repository.VendorDetailRepository
	reviewRepo repository.ReviewRepository
}

func NewVendorService(db *gorm.DB, vendorRepo repository.VendorRepository, detailRepo repository.VendorDetailRepository, reviewRepo repository.ReviewRepository) VendorService {
	return &vendorService{
		db:         db,
		vendorRepo: vendorRepo,
		detailRepo: detailRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *vendorService) ListVendors(ctx context.Context, strategy ranking.Strategy) ([]model.RankedVendor, error) {
	logger := middleware.GetLogger(ctx)
	vendors, err := s.vendorRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list vendors", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "業者一覧の取得に失敗しました。", "", err)
	}
	return ranking.Ranked(vendors, strategy), nil
}

func (s *vendorService) GetVendorDetail(ctx context.Context, key string) (*model.VendorDetailResponse, error) {
	logger := middleware.GetLogger(ctx)

	// 管理画面はUUID、公開ページはslugで引くため両対応にしている
	var vendor *model.Vendor
	var err error
	if vendorID, parseErr := uuid.Parse(key); parseErr == nil {
		vendor, err = s.vendorRepo.FindByID(ctx, s.db, vendorID)
	} else {
		vendor, err = s.vendorRepo.FindBySlug(ctx, s.db, key)
	}
	if err != nil {
		return nil, err
	}

	// 料金プラン・FAQはオプション情報。テーブル未作成でもページ全体は落とさない
	plans, err := s.detailRepo.FindPricePlans(ctx, s.db, vendor.VendorID)
	if err != nil {
		if !errors.Is(err, model.ErrTableAbsent) {
			logger.Error("Failed to list vendor price plans", "error", err, "vendor_id", vendor.VendorID.String())
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "業者情報の取得に失敗しました。", "", err)
		}
		logger.Warn("Price plan table not provisioned, degrading to empty list")
		plans = nil
	}
	faqs, err := s.detailRepo.FindFaqs(ctx, s.db, vendor.VendorID)
	if err != nil {
		if !errors.Is(err, model.ErrTableAbsent) {
			logger.Error("Failed to list vendor faqs", "error", err, "vendor_id", vendor.VendorID.String())
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "業者情報の取得に失敗しました。", "", err)
		}
		logger.Warn("FAQ table not provisioned, degrading to empty list")
		faqs = nil
	}

	reviews, err := s.reviewRepo.FindApproved(ctx, s.db, &vendor.VendorID)
	if err != nil {
		logger.Error("Failed to list approved reviews for vendor", "error", err, "vendor_id", vendor.VendorID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "口コミの取得に失敗しました。", "", err)
	}

	if plans == nil {
		plans = []*model.VendorPricePlan{}
	}
	if faqs == nil {
		faqs = []*model.VendorFaq{}
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}

	return &model.VendorDetailResponse{
		Vendor:        vendor,
		DisplayRating: DisplayRating(vendor.Rating, reviews),
		PricePlans:    plans,
		Faqs:          faqs,
		Reviews:       reviews,
	}, nil
}

func (s *vendorService) CreateVendor(ctx context.Context, req *model.VendorRequest) (*model.Vendor, error) {
	logger := middleware.GetLogger(ctx)
	var createdVendor *model.Vendor

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Slug != nil {
			exists, err := s.vendorRepo.CheckSlugExists(ctx, tx, *req.Slug, nil)
			if err != nil {
				logger.Error("Error checking slug existence in transaction", "error", err)
				return model.ErrInternalServer
			}
			if exists {
				return model.ErrConflict
			}
		}

		vendor := vendorFromRequest(req)
		vendor.VendorID = uuid.New()
		if err := s.vendorRepo.Create(ctx, tx, vendor); err != nil {
			logger.Error("Error creating vendor in transaction", "error", err)
			return model.ErrInternalServer
		}

		createdVendor = vendor
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("SLUG_CONFLICT", "このスラッグは既に使われています。", "slug", model.ErrConflict)
		}
		logger.Error("Transaction failed for CreateVendor", "error", err)
		return nil, model.ErrInternalServer
	}

	return createdVendor, nil
}

// UpdateVendor は全項目の置換です（部分更新はしない）
func (s *vendorService) UpdateVendor(ctx context.Context, vendorID uuid.UUID, req *model.VendorRequest) (*model.Vendor, error) {
	logger := middleware.GetLogger(ctx)
	var updatedVendor *model.Vendor

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.vendorRepo.FindByID(ctx, tx, vendorID)
		if err != nil {
			return err // model.ErrNotFound or wrapped store error
		}

		if req.Slug != nil {
			exists, err := s.vendorRepo.CheckSlugExists(ctx, tx, *req.Slug, &vendorID)
			if err != nil {
				logger.Error("Error checking slug existence during update", "error", err)
				return model.ErrInternalServer
			}
			if exists {
				return model.ErrConflict
			}
		}

		vendor := vendorFromRequest(req)
		vendor.VendorID = vendorID
		vendor.CreatedAt = existing.CreatedAt
		if err := s.vendorRepo.Save(ctx, tx, vendor); err != nil {
			logger.Error("Error saving vendor in transaction", "error", err)
			return model.ErrInternalServer
		}

		updatedVendor = vendor
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("SLUG_CONFLICT", "このスラッグは既に使われています。", "slug", model.ErrConflict)
		}
		logger.Error("Transaction failed for UpdateVendor", "error", err)
		return nil, model.ErrInternalServer
	}

	return updatedVendor, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, vendorID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := s.vendorRepo.Delete(ctx, s.db, vendorID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		logger.Error("Failed to delete vendor", "error", err, "vendor_id", vendorID.String())
		return model.ErrInternalServer
	}
	return nil
}

func vendorFromRequest(req *model.VendorRequest) *model.Vendor {
	return &model.Vendor{
		Name:                     req.Name,
		Slug:                     req.Slug,
		Description:              req.Description,
		Features:                 pq.StringArray(req.Features),
		ServiceAreas:             pq.StringArray(req.ServiceAreas),
		Rating:                   req.Rating,
		MinPrice:                 req.MinPrice,
		HasRealEstatePartnership: req.HasRealEstatePartnership,
		Phone:                    req.Phone,
		WebsiteURL:               req.WebsiteURL,
		ImageURL:                 req.ImageURL,
		Address:                  req.Address,
		RepresentativeName:       req.RepresentativeName,
		BusinessHours:            req.BusinessHours,
		EstablishedYear:          req.EstablishedYear,
		EmployeeCount:            req.EmployeeCount,
		Certifications:           pq.StringArray(req.Certifications),
		StaffMessage:             req.StaffMessage,
	}
}
