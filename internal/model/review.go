// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Review は口コミを表します。業者・エリアへの参照はどちらも任意（孤立した口コミも存在しうる）
type Review struct {
	ReviewID   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID   *uuid.UUID `gorm:"type:uuid;index" json:"vendor_id"`
	AreaSlug   *string    `gorm:"index" json:"area_slug"`
	Nickname   *string    `json:"nickname"`
	Rating     *int       `json:"rating"` // 0〜5。未入力ならnull
	Body       *string    `json:"body"`
	IsApproved bool       `gorm:"not null;default:false" json:"is_approved"` // 手動承認されるまで非公開
	CreatedAt  time.Time  `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// PostReviewRequest は口コミ投稿リクエストDTO。
// is_approved はペイロードに含まれていても無視し、常に false で保存する
type PostReviewRequest struct {
	VendorID   *uuid.UUID `json:"vendor_id"`
	AreaSlug   *string    `json:"area_slug"`
	Nickname   string     `json:"nickname" validate:"required,max=50"`
	Rating     *int       `json:"rating" validate:"omitempty,min=0,max=5"`
	Body       string     `json:"body" validate:"required,max=2000"`
	IsApproved bool       `json:"is_approved,omitempty"`
}

// ApproveReviewRequest は口コミ承認フラグ更新DTO
type ApproveReviewRequest struct {
	IsApproved *bool `json:"is_approved" validate:"required"`
}
