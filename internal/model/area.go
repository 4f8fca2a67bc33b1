package model

import "github.com/google/uuid"

// Area は対応エリア（市区町村）を表します
type Area struct {
	AreaID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`                 // 表示名（例: 川口市）
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`     // URLキー。業者のservice_areasから参照されるため変更不可
	ParentRegion *string   `gorm:"index" json:"parent_region"`           // "saitama" / "north-kanto"
	OrderIndex   int       `gorm:"not null;default:0" json:"order_index"` // 表示順
}

func (Area) TableName() string {
	return "areas"
}
