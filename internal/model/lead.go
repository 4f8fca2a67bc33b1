package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// LeadStatus はリードの対応状況
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusContacted  LeadStatus = "contacted"
	LeadStatusInProgress LeadStatus = "in_progress"
	LeadStatusCompleted  LeadStatus = "completed"
	LeadStatusCancelled  LeadStatus = "cancelled"
)

// LeadStatusLabels は管理画面・通知メール用の日本語ラベル
var LeadStatusLabels = map[LeadStatus]string{
	LeadStatusNew:        "未対応",
	LeadStatusContacted:  "連絡済み",
	LeadStatusInProgress: "対応中",
	LeadStatusCompleted:  "完了",
	LeadStatusCancelled:  "キャンセル",
}

// IsValid は5値のいずれかであることを確認します。遷移順序の制約は設けない（任意の状態間を行き来できる）
func (s LeadStatus) IsValid() bool {
	_, ok := LeadStatusLabels[s]
	return ok
}

// Lead は査定依頼（問い合わせ）を表します
type Lead struct {
	LeadID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Source        string         `gorm:"not null" json:"source"` // 流入元: web_form / LINE など
	UserName      *string        `json:"user_name"`
	ContactInfo   *string        `json:"contact_info"` // 電話・メールの複合テキスト
	Prefecture    *string        `json:"prefecture"`
	City          *string        `json:"city"`
	AddressDetail *string        `json:"address_detail"`
	PropertyType  *string        `json:"property_type"`
	Status        LeadStatus     `gorm:"not null;default:new" json:"status"`
	ImageURLs     pq.StringArray `gorm:"type:text[]" json:"image_urls"`
	AdminMemo     *string        `json:"admin_memo"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (Lead) TableName() string {
	return "leads"
}

// ContactRequest は公開問い合わせフォームのリクエストDTO。
// status と source はペイロードに含まれていても受け付けるだけで無視する
// （初期ステータスは常に new、流入元は常に web_form になる）
type ContactRequest struct {
	UserName     string `json:"user_name" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"required,max=30"`
	Email        string `json:"email" validate:"omitempty,email"`
	Prefecture   string `json:"prefecture" validate:"required,max=20"`
	City         string `json:"city" validate:"required,max=50"`
	PropertyType string `json:"property_type" validate:"required,max=30"`
	Notes        string `json:"notes" validate:"omitempty,max=2000"`
	Status       string `json:"status,omitempty"`
	Source       string `json:"source,omitempty"`
}

// ContactResponse は問い合わせ成功時のレスポンス
type ContactResponse struct {
	Success bool  `json:"success"`
	Data    *Lead `json:"data"`
}

// UpdateLeadRequest は管理者によるリード更新DTO。更新できるのはこの2項目だけ
type UpdateLeadRequest struct {
	Status    string  `json:"status" validate:"required"`
	AdminMemo *string `json:"admin_memo"`
}
