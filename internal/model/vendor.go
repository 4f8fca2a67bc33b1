package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Vendor は遺品整理業者を表します
type Vendor struct {
	VendorID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name                     string         `gorm:"not null" json:"name"`
	Slug                     *string        `gorm:"uniqueIndex" json:"slug"`
	Description              *string        `json:"description"`
	Features                 pq.StringArray `gorm:"type:text[]" json:"features"`      // 特徴タグ（表示順を保持）
	ServiceAreas             pq.StringArray `gorm:"type:text[]" json:"service_areas"` // 対応エリアのslug集合
	Rating                   float64        `gorm:"not null;default:0" json:"rating"` // 承認済み口コミが無い場合の基準評価
	MinPrice                 *int           `json:"min_price"`                        // 最安価格。未掲載ならnull
	HasRealEstatePartnership bool           `gorm:"not null;default:false" json:"has_real_estate_partnership"`
	Phone                    *string        `json:"phone"`
	WebsiteURL               *string        `json:"website_url"`
	ImageURL                 *string        `json:"image_url"`

	// 詳細プロフィール（会社概要欄）
	Address            *string        `json:"address"`
	RepresentativeName *string        `json:"representative_name"`
	BusinessHours      *string        `json:"business_hours"`
	EstablishedYear    *int           `json:"established_year"`
	EmployeeCount      *string        `json:"employee_count"`
	Certifications     pq.StringArray `gorm:"type:text[]" json:"certifications"`
	StaffMessage       *string        `json:"staff_message"`

	CreatedAt time.Time `json:"created_at"`
}

func (Vendor) TableName() string {
	return "vendors"
}

// VendorPricePlan は業者の間取り別料金プラン。Vendor削除時に一緒に消える子エンティティ
type VendorPricePlan struct {
	PlanID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID      uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_id"`
	RoomType      string    `gorm:"not null" json:"room_type"` // 例: 1K / 2LDK
	PriceFrom     *int      `json:"price_from"`
	PriceTo       *int      `json:"price_to"`
	DurationHours *string   `json:"duration_hours"`
	StaffCount    *string   `json:"staff_count"`
	OrderIndex    int       `gorm:"not null;default:0" json:"order_index"`
}

func (VendorPricePlan) TableName() string {
	return "vendor_price_plans"
}

// VendorFaq は業者のよくある質問。所有関係はVendorPricePlanと同じ
type VendorFaq struct {
	FaqID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Question   string    `gorm:"not null" json:"question"`
	Answer     string    `gorm:"not null" json:"answer"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
}

func (VendorFaq) TableName() string {
	return "vendor_faqs"
}

// 業者作成・更新（全置換）リクエストDTO
type VendorRequest struct {
	Name                     string   `json:"name" validate:"required,max=100"`
	Slug                     *string  `json:"slug" validate:"omitempty,min=1,max=100"`
	Description              *string  `json:"description"`
	Features                 []string `json:"features"`
	ServiceAreas             []string `json:"service_areas"`
	Rating                   float64  `json:"rating" validate:"min=0,max=5"`
	MinPrice                 *int     `json:"min_price" validate:"omitempty,min=0"`
	HasRealEstatePartnership bool     `json:"has_real_estate_partnership"`
	Phone                    *string  `json:"phone"`
	WebsiteURL               *string  `json:"website_url" validate:"omitempty,url"`
	ImageURL                 *string  `json:"image_url" validate:"omitempty,url"`
	Address                  *string  `json:"address"`
	RepresentativeName       *string  `json:"representative_name"`
	BusinessHours            *string  `json:"business_hours"`
	EstablishedYear          *int     `json:"established_year" validate:"omitempty,min=1800,max=2100"`
	EmployeeCount            *string  `json:"employee_count"`
	Certifications           []string `json:"certifications"`
	StaffMessage             *string  `json:"staff_message"`
}

// RankedVendor は表示順位付きの業者。1位〜3位はUI側で金銀銅の装飾が付く
type RankedVendor struct {
	Rank int `json:"rank"` // 1始まり
	*Vendor
}

// VendorDetailResponse は業者詳細ページ用のレスポンスDTO
type VendorDetailResponse struct {
	*Vendor
	DisplayRating float64            `json:"display_rating"` // 承認済み口コミの平均。無ければ基準評価
	PricePlans    []*VendorPricePlan `json:"price_plans"`
	Faqs          []*VendorFaq       `json:"faqs"`
	Reviews       []*Review          `json:"reviews"`
}
