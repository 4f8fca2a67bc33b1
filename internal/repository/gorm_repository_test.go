// internal/repository/gorm_repository_test.go
package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"iejimai_com/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// テストごとに独立したインメモリDBを作る。名前を分けないと接続間でデータが共有されてしまう
func newTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...))
	}
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// --- AreaRepository ---
func TestGormAreaRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t, &model.Area{})
	repo := NewGormAreaRepository()

	// 表示順と逆の順序で投入する
	require.NoError(t, db.Create(&model.Area{AreaID: uuid.New(), Name: "杉並区", Slug: "suginami", OrderIndex: 2}).Error)
	require.NoError(t, db.Create(&model.Area{AreaID: uuid.New(), Name: "世田谷区", Slug: "setagaya", OrderIndex: 1}).Error)

	areas, err := repo.FindAll(ctx, db)
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "setagaya", areas[0].Slug)
	assert.Equal(t, "suginami", areas[1].Slug)
}

func TestGormAreaRepository_FindBySlug(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t, &model.Area{})
	repo := NewGormAreaRepository()

	require.NoError(t, db.Create(&model.Area{AreaID: uuid.New(), Name: "世田谷区", Slug: "setagaya"}).Error)

	t.Run("正常系: slugで取得できる", func(t *testing.T) {
		area, err := repo.FindBySlug(ctx, db, "setagaya")
		require.NoError(t, err)
		assert.Equal(t, "世田谷区", area.Name)
	})

	t.Run("異常系: 存在しないslugはErrNotFound", func(t *testing.T) {
		_, err := repo.FindBySlug(ctx, db, "nowhere")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

// --- VendorRepository ---
func TestGormVendorRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t, &model.Vendor{})
	repo := NewGormVendorRepository()

	vendor := &model.Vendor{
		VendorID:     uuid.New(),
		Name:         "東京整理社",
		Slug:         strPtr("tokyo-seiri"),
		ServiceAreas: pq.StringArray{"setagaya", "suginami"},
		Rating:       4.5,
		MinPrice:     intPtr(30000),
	}
	require.NoError(t, repo.Create(ctx, db, vendor))

	t.Run("FindBySlug: text[]込みで往復できる", func(t *testing.T) {
		got, err := repo.FindBySlug(ctx, db, "tokyo-seiri")
		require.NoError(t, err)
		assert.Equal(t, "東京整理社", got.Name)
		assert.Equal(t, pq.StringArray{"setagaya", "suginami"}, got.ServiceAreas)
	})

	t.Run("CheckSlugExists: 自分自身は除外できる", func(t *testing.T) {
		exists, err := repo.CheckSlugExists(ctx, db, "tokyo-seiri", nil)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.CheckSlugExists(ctx, db, "tokyo-seiri", &vendor.VendorID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Save: 全項目を置き換える", func(t *testing.T) {
		updated := *vendor
		updated.Name = "東京整理社（新）"
		updated.MinPrice = nil
		require.NoError(t, repo.Save(ctx, db, &updated))

		got, err := repo.FindByID(ctx, db, vendor.VendorID)
		require.NoError(t, err)
		assert.Equal(t, "東京整理社（新）", got.Name)
		assert.Nil(t, got.MinPrice)
	})

	t.Run("Delete: 存在しないIDはErrNotFound", func(t *testing.T) {
		err := repo.Delete(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)

		require.NoError(t, repo.Delete(ctx, db, vendor.VendorID))
		_, err = repo.FindByID(ctx, db, vendor.VendorID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormVendorRepository_FindAll_RatingDesc(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t, &model.Vendor{})
	repo := NewGormVendorRepository()

	require.NoError(t, repo.Create(ctx, db, &model.Vendor{VendorID: uuid.New(), Name: "低評価社", Rating: 3.1}))
	require.NoError(t, repo.Create(ctx, db, &model.Vendor{VendorID: uuid.New(), Name: "高評価社", Rating: 4.9}))

	vendors, err := repo.FindAll(ctx, db)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, "高評価社", vendors[0].Name)
}

// --- VendorDetailRepository ---
func TestGormVendorDetailRepository(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()

	t.Run("正常系: order_index順で返す", func(t *testing.T) {
		db := newTestDB(t, &model.VendorPricePlan{}, &model.VendorFaq{})
		repo := NewGormVendorDetailRepository()

		require.NoError(t, db.Create(&model.VendorPricePlan{PlanID: uuid.New(), VendorID: vendorID, RoomType: "2LDK", OrderIndex: 2}).Error)
		require.NoError(t, db.Create(&model.VendorPricePlan{PlanID: uuid.New(), VendorID: vendorID, RoomType: "1K", OrderIndex: 1}).Error)

		plans, err := repo.FindPricePlans(ctx, db, vendorID)
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, "1K", plans[0].RoomType)
	})

	t.Run("異常系: テーブル未作成はErrTableAbsent", func(t *testing.T) {
		db := newTestDB(t) // マイグレーションしない
		repo := NewGormVendorDetailRepository()

		_, err := repo.FindPricePlans(ctx, db, vendorID)
		assert.ErrorIs(t, err, model.ErrTableAbsent)

		_, err = repo.FindFaqs(ctx, db, vendorID)
		assert.ErrorIs(t, err, model.ErrTableAbsent)
	})
}

// --- LeadRepository ---
func TestGormLeadRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t, &model.Lead{})
	repo := NewGormLeadRepository()

	contact := "電話: 090-1234-5678\nメール: taro@example.com"
	lead := &model.Lead{
		LeadID:       uuid.New(),
		Source:       "web_form",
		UserName:     strPtr("山田太郎"),
		ContactInfo:  &contact,
		Prefecture:   strPtr("東京都"),
		City:         strPtr("世田谷区"),
		PropertyType: strPtr("一戸建て"),
		Status:       model.LeadStatusNew,
		CreatedAt:    time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, db, lead))

	t.Run("FindAll: 新しい順で返す", func(t *testing.T) {
		newer := &model.Lead{LeadID: uuid.New(), Source: "web_form", Status: model.LeadStatusNew, CreatedAt: time.Now()}
		require.NoError(t, repo.Create(ctx, db, newer))

		leads, err := repo.FindAll(ctx, db)
		require.NoError(t, err)
		require.Len(t, leads, 2)
		assert.Equal(t, newer.LeadID, leads[0].LeadID)
	})

	t.Run("UpdateStatusAndMemo: statusとadmin_memo以外は変更しない", func(t *testing.T) {
		memo := "折り返し済み"
		require.NoError(t, repo.UpdateStatusAndMemo(ctx, db, lead.LeadID, model.LeadStatusContacted, &memo))

		got, err := repo.FindByID(ctx, db, lead.LeadID)
		require.NoError(t, err)
		assert.Equal(t, model.LeadStatusContacted, got.Status)
		require.NotNil(t, got.AdminMemo)
		assert.Equal(t, "折り返し済み", *got.AdminMemo)
		// 連絡先や氏名はそのまま
		require.NotNil(t, got.ContactInfo)
		assert.Equal(t, contact, *got.ContactInfo)
		require.NotNil(t, got.UserName)
		assert.Equal(t, "山田太郎", *got.UserName)
	})

	t.Run("UpdateStatusAndMemo: 存在しないIDはErrNotFound", func(t *testing.T) {
		err := repo.UpdateStatusAndMemo(ctx, db, uuid.New(), model.LeadStatusCompleted, nil)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

// --- ReviewRepository ---
func TestGormReviewRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t, &model.Review{})
	repo := NewGormReviewRepository()

	vendorID := uuid.New()
	otherVendorID := uuid.New()

	approved := &model.Review{ReviewID: uuid.New(), VendorID: &vendorID, Nickname: strPtr("匿名A"), Rating: intPtr(5), IsApproved: true}
	pending := &model.Review{ReviewID: uuid.New(), VendorID: &vendorID, Nickname: strPtr("匿名B"), Rating: intPtr(1), IsApproved: false}
	otherApproved := &model.Review{ReviewID: uuid.New(), VendorID: &otherVendorID, Nickname: strPtr("匿名C"), Rating: intPtr(4), IsApproved: true}
	for _, r := range []*model.Review{approved, pending, otherApproved} {
		require.NoError(t, repo.Create(ctx, db, r))
	}

	t.Run("FindApproved: 未承認は含まれない", func(t *testing.T) {
		reviews, err := repo.FindApproved(ctx, db, &vendorID)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, approved.ReviewID, reviews[0].ReviewID)
	})

	t.Run("FindApproved: 業者指定なしなら全業者の承認済み", func(t *testing.T) {
		reviews, err := repo.FindApproved(ctx, db, nil)
		require.NoError(t, err)
		assert.Len(t, reviews, 2)
	})

	t.Run("UpdateApproval: 承認フラグを切り替えて反映される", func(t *testing.T) {
		require.NoError(t, repo.UpdateApproval(ctx, db, pending.ReviewID, true))

		reviews, err := repo.FindApproved(ctx, db, &vendorID)
		require.NoError(t, err)
		assert.Len(t, reviews, 2)
	})

	t.Run("UpdateApproval: 存在しないIDはErrNotFound", func(t *testing.T) {
		err := repo.UpdateApproval(ctx, db, uuid.New(), true)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
