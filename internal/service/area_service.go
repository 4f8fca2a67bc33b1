package service

import (
	"context"

	"iejimai_com/internal/middleware"
	"iejimai_com/internal/model"
	"iejimai_com/internal/ranking"
	"iejimai_com/internal/repository"

	"gorm.io/gorm"
)

type AreaService interface {
	ListAreas(ctx context.Context) ([]*model.Area, error)
	GetAreaBySlug(ctx context.Context, slug string) (*model.Area, error)
	// ListVendorsForArea は対応エリアに指定エリアを含む業者を評価の降順・順位付きで返します
	ListVendorsForArea(ctx context.Context, slug string) ([]model.RankedVendor, error)
}

type areaService struct {
	db         *gorm.DB
	areaRepo   repository.AreaRepository
	vendorRepo repository.VendorRepository
}

func NewAreaService(db *gorm.DB, areaRepo repository.AreaRepository, vendorRepo repository.VendorRepository) AreaService {
	return &areaService{
		db:         db,
		areaRepo:   areaRepo,
		vendorRepo: vendorRepo,
	}
}

func (s *areaService) ListAreas(ctx context.Context) ([]*model.Area, error) {
	logger := middleware.GetLogger(ctx)
	areas, err := s.areaRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list areas", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "エリア一覧の取得に失敗しました。", "", err)
	}
	return areas, nil
}

func (s *areaService) GetAreaBySlug(ctx context.Context, slug string) (*model.Area, error) {
	area, err := s.areaRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		// ErrNotFound はそのまま返す（リポジトリで変換済み）
		return nil, err
	}
	return area, nil
}

func (s *areaService) ListVendorsForArea(ctx context.Context, slug string) ([]model.RankedVendor, error) {
	logger := middleware.GetLogger(ctx)

	// エリアの存在確認。未知のslugは404にする
	if _, err := s.areaRepo.FindBySlug(ctx, s.db, slug); err != nil {
		return nil, err
	}

	vendors, err := s.vendorRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list vendors for area", "error", err, "slug", slug)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "業者一覧の取得に失敗しました。", "", err)
	}

	// 絞り込みは取得後にメモリ上で行い、表示順は評価の降順に揃える
	matched := ranking.ForArea(vendors, slug)
	return ranking.Ranked(matched, ranking.StrategyRecommended), nil
}
