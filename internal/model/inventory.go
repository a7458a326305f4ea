package model

import (
	"time"

	"gorm.io/datatypes"
)

// Inventory is one counted stock snapshot: a single record per
// merchant name, date and tenant. Rows holds the counted items as the
// client sent them.
type Inventory struct {
	ID           int64          `json:"id" gorm:"primaryKey;autoIncrement:false"`
	MID          int64          `json:"mid" gorm:"column:mid;primaryKey;autoIncrement:false;uniqueIndex:idx_inventories_name_date_mid"`
	MerchantName string         `json:"merchant_name" gorm:"type:varchar(255);not null;uniqueIndex:idx_inventories_name_date_mid"`
	Date         string         `json:"date" gorm:"type:varchar(32);not null;uniqueIndex:idx_inventories_name_date_mid"`
	Rows         datatypes.JSON `json:"rows" gorm:"type:jsonb"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TableName overrides the default pluralization
func (Inventory) TableName() string {
	return "inventories"
}
