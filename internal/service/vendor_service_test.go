// internal/service/vendor_service_test.go
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"iejimai_com/internal/model"
	"iejimai_com/internal/ranking"
	"iejimai_com/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// トランザクション用のインメモリDBを用意する（DB操作自体はモックする）
func setupTestDBVendor() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func init() {
	// テスト中のデフォルトロガー出力は捨てる
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// --- Test ListVendors ---
func Test_vendorService_ListVendors(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVendor()

	vendorA := &model.Vendor{VendorID: uuid.New(), Name: "A社", Rating: 4.8}
	vendorB := &model.Vendor{VendorID: uuid.New(), Name: "B社", Rating: 4.2}

	tests := []struct {
		name      string
		strategy  ranking.Strategy
		setupMock func(vendorRepo *mocks.VendorRepository)
		wantErr   bool
		wantNames []string
	}{
		{
			name:     "正常系: 評価順で順位が付く",
			strategy: ranking.StrategyRecommended,
			setupMock: func(vendorRepo *mocks.VendorRepository) {
				vendorRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return([]*model.Vendor{vendorB, vendorA}, nil).Once()
			},
			wantNames: []string{"A社", "B社"},
		},
		{
			name:     "正常系: 業者ゼロ件でも空スライスを返す",
			strategy: ranking.StrategyRecommended,
			setupMock: func(vendorRepo *mocks.VendorRepository) {
				vendorRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return([]*model.Vendor{}, nil).Once()
			},
			wantNames: []string{},
		},
		{
			name:     "異常系: リポジトリのエラー",
			strategy: ranking.StrategyRecommended,
			setupMock: func(vendorRepo *mocks.VendorRepository) {
				vendorRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendorRepo := new(mocks.VendorRepository)
			detailRepo := new(mocks.VendorDetailRepository)
			reviewRepo := new(mocks.ReviewRepository)
			tt.setupMock(vendorRepo)
			svc := NewVendorService(db, vendorRepo, detailRepo, reviewRepo)

			got, err := svc.ListVendors(ctx, tt.strategy)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Len(t, got, len(tt.wantNames))
				for i, name := range tt.wantNames {
					assert.Equal(t, name, got[i].Name)
					assert.Equal(t, i+1, got[i].Rank) // 順位は1始まり
				}
			}
			vendorRepo.AssertExpectations(t)
		})
	}
}

// --- Test GetVendorDetail ---
func Test_vendorService_GetVendorDetail(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVendor()

	vendorID := uuid.New()
	vendor := &model.Vendor{VendorID: vendorID, Name: "テスト業者", Slug: strPtr("test-gyosha"), Rating: 4.0}

	tests := []struct {
		name       string
		key        string
		setupMock  func(vendorRepo *mocks.VendorRepository, detailRepo *mocks.VendorDetailRepository, reviewRepo *mocks.ReviewRepository)
		wantErr    error
		wantRating float64
		wantPlans  int
	}{
		{
			name: "正常系: UUIDで取得、承認済み口コミの平均が表示評価になる",
			key:  vendorID.String(),
			setupMock: func(vendorRepo *mocks.VendorRepository, detailRepo *mocks.VendorDetailRepository, reviewRepo *mocks.ReviewRepository) {
				vendorRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).Return(vendor, nil).Once()
				detailRepo.On("FindPricePlans", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).
					Return([]*model.VendorPricePlan{{PlanID: uuid.New(), VendorID: vendorID, RoomType: "1K"}}, nil).Once()
				detailRepo.On("FindFaqs", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).
					Return([]*model.VendorFaq{}, nil).Once()
				reviewRepo.On("FindApproved", ctx, mock.AnythingOfType("*gorm.DB"), &vendorID).
					Return([]*model.Review{
						{ReviewID: uuid.New(), Rating: intPtr(5), IsApproved: true},
						{ReviewID: uuid.New(), Rating: intPtr(4), IsApproved: true},
						{ReviewID: uuid.New(), Rating: intPtr(3), IsApproved: true},
					}, nil).Once()
			},
			wantRating: 4.0,
			wantPlans:  1,
		},
		{
			name: "正常系: slugで取得、口コミ無しなら基準評価",
			key:  "test-gyosha",
			setupMock: func(vendorRepo *mocks.VendorRepository, detailRepo *mocks.VendorDetailRepository, reviewRepo *mocks.ReviewRepository) {
				vendorRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "test-gyosha").Return(vendor, nil).Once()
				detailRepo.On("FindPricePlans", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).
					Return([]*model.VendorPricePlan{}, nil).Once()
				detailRepo.On("FindFaqs", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).
					Return([]*model.VendorFaq{}, nil).Once()
				reviewRepo.On("FindApproved", ctx, mock.AnythingOfType("*gorm.DB"), &vendorID).
					Return([]*model.Review{}, nil).Once()
			},
			wantRating: 4.0,
		},
		{
			name: "正常系: 料金プラン・FAQテーブル未作成でも空リストで返す",
			key:  vendorID.String(),
			setupMock: func(vendorRepo *mocks.VendorRepository, detailRepo *mocks.VendorDetailRepository, reviewRepo *mocks.ReviewRepository) {
				vendorRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).Return(vendor, nil).Once()
				detailRepo.On("FindPricePlans", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).
					Return(nil, model.ErrTableAbsent).Once()
				detailRepo.On("FindFaqs", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).
					Return(nil, model.ErrTableAbsent).Once()
				reviewRepo.On("FindApproved", ctx, mock.AnythingOfType("*gorm.DB"), &vendorID).
					Return([]*model.Review{}, nil).Once()
			},
			wantRating: 4.0,
			wantPlans:  0,
		},
		{
			name: "異常系: 存在しない業者",
			key:  "unknown-slug",
			setupMock: func(vendorRepo *mocks.VendorRepository, detailRepo *mocks.VendorDetailRepository, reviewRepo *mocks.ReviewRepository) {
				vendorRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "unknown-slug").
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendorRepo := new(mocks.VendorRepository)
			detailRepo := new(mocks.VendorDetailRepository)
			reviewRepo := new(mocks.ReviewRepository)
			tt.setupMock(vendorRepo, detailRepo, reviewRepo)
			svc := NewVendorService(db, vendorRepo, detailRepo, reviewRepo)

			got, err := svc.GetVendorDetail(ctx, tt.key)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.wantRating, got.DisplayRating)
				assert.Len(t, got.PricePlans, tt.wantPlans)
				assert.NotNil(t, got.Faqs)
				assert.NotNil(t, got.Reviews)
			}
			vendorRepo.AssertExpectations(t)
			detailRepo.AssertExpectations(t)
			reviewRepo.AssertExpectations(t)
		})
	}
}

// --- Test CreateVendor ---
func Test_vendorService_CreateVendor(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVendor()

	tests := []struct {
		name      string
		req       *model.VendorRequest
		setupMock func(vendorRepo *mocks.VendorRepository)
		wantErr   error
	}{
		{
			name: "正常系: slug付きで作成できる",
			req:  &model.VendorRequest{Name: "新規業者", Slug: strPtr("shinki"), Rating: 4.5},
			setupMock: func(vendorRepo *mocks.VendorRepository) {
				vendorRepo.On("CheckSlugExists", ctx, mock.AnythingOfType("*gorm.DB"), "shinki", (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				vendorRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Vendor")).
					Run(func(args mock.Arguments) {
						v := args.Get(2).(*model.Vendor)
						assert.Equal(t, "新規業者", v.Name)
						assert.NotEqual(t, uuid.Nil, v.VendorID)
					}).Return(nil).Once()
			},
		},
		{
			name: "正常系: slug無しなら重複チェックをしない",
			req:  &model.VendorRequest{Name: "slugなし業者", Rating: 3.0},
			setupMock: func(vendorRepo *mocks.VendorRepository) {
				vendorRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Vendor")).
					Return(nil).Once()
			},
		},
		{
			name: "異常系: slugが重複",
			req:  &model.VendorRequest{Name: "重複業者", Slug: strPtr("dup"), Rating: 3.0},
			setupMock: func(vendorRepo *mocks.VendorRepository) {
				vendorRepo.On("CheckSlugExists", ctx, mock.AnythingOfType("*gorm.DB"), "dup", (*uuid.UUID)(nil)).
					Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendorRepo := new(mocks.VendorRepository)
			tt.setupMock(vendorRepo)
			svc := NewVendorService(db, vendorRepo, new(mocks.VendorDetailRepository), new(mocks.ReviewRepository))

			got, err := svc.CreateVendor(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.req.Name, got.Name)
			}
			vendorRepo.AssertExpectations(t)
		})
	}
}

// --- Test UpdateVendor ---
func Test_vendorService_UpdateVendor(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVendor()

	vendorID := uuid.New()
	existing := &model.Vendor{VendorID: vendorID, Name: "旧社名", Slug: strPtr("kyusha")}

	tests := []struct {
		name      string
		req       *model.VendorRequest
		setupMock func(vendorRepo *mocks.VendorRepository)
		wantErr   error
	}{
		{
			name: "正常系: 全項目を置き換える",
			req:  &model.VendorRequest{Name: "新社名", Slug: strPtr("kyusha"), Rating: 4.1},
			setupMock: func(vendorRepo *mocks.VendorRepository) {
				vendorRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).Return(existing, nil).Once()
				vendorRepo.On("CheckSlugExists", ctx, mock.AnythingOfType("*gorm.DB"), "kyusha", &vendorID).
					Return(false, nil).Once()
				vendorRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Vendor")).
					Run(func(args mock.Arguments) {
						v := args.Get(2).(*model.Vendor)
						assert.Equal(t, vendorID, v.VendorID) // IDは引き継ぐ
						assert.Equal(t, "新社名", v.Name)
					}).Return(nil).Once()
			},
		},
		{
			name: "異常系: 業者が存在しない",
			req:  &model.VendorRequest{Name: "新社名"},
			setupMock: func(vendorRepo *mocks.VendorRepository) {
				vendorRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 別業者が同じslugを使っている",
			req:  &model.VendorRequest{Name: "新社名", Slug: strPtr("taken")},
			setupMock: func(vendorRepo *mocks.VendorRepository) {
				vendorRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).Return(existing, nil).Once()
				vendorRepo.On("CheckSlugExists", ctx, mock.AnythingOfType("*gorm.DB"), "taken", &vendorID).
					Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendorRepo := new(mocks.VendorRepository)
			tt.setupMock(vendorRepo)
			svc := NewVendorService(db, vendorRepo, new(mocks.VendorDetailRepository), new(mocks.ReviewRepository))

			got, err := svc.UpdateVendor(ctx, vendorID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.req.Name, got.Name)
			}
			vendorRepo.AssertExpectations(t)
		})
	}
}

// --- Test DeleteVendor ---
func Test_vendorService_DeleteVendor(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVendor()
	vendorID := uuid.New()

	t.Run("正常系: 削除できる", func(t *testing.T) {
		vendorRepo := new(mocks.VendorRepository)
		vendorRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).Return(nil).Once()
		svc := NewVendorService(db, vendorRepo, new(mocks.VendorDetailRepository), new(mocks.ReviewRepository))

		err := svc.DeleteVendor(ctx, vendorID)
		require.NoError(t, err)
		vendorRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しない業者", func(t *testing.T) {
		vendorRepo := new(mocks.VendorRepository)
		vendorRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), vendorID).Return(model.ErrNotFound).Once()
		svc := NewVendorService(db, vendorRepo, new(mocks.VendorDetailRepository), new(mocks.ReviewRepository))

		err := svc.DeleteVendor(ctx, vendorID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		vendorRepo.AssertExpectations(t)
	})
}
