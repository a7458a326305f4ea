package model

import (
	"time"

	"gorm.io/datatypes"
)

// BillOfMaterial is a named recipe: the items array is stored as the
// client sent it, alongside the date it takes effect.
type BillOfMaterial struct {
	ID            int64          `json:"id" gorm:"primaryKey;autoIncrement:false"`
	MID           int64          `json:"mid" gorm:"column:mid;primaryKey;autoIncrement:false;uniqueIndex:idx_bom_name_mid"`
	Name          string         `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_bom_name_mid"`
	Items         datatypes.JSON `json:"items" gorm:"type:jsonb"`
	EffectiveDate string         `json:"effective_date" gorm:"type:varchar(32)"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableName overrides the default pluralization
func (BillOfMaterial) TableName() string {
	return "bill_of_materials"
}
