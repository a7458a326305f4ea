package model

import (
	"time"
)

// Merchant represents a named business unit under a tenant. Terminals
// resync the full merchant list, so (name, mid) is the identity the
// sync engine matches on.
type Merchant struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	MID       int64     `json:"mid" gorm:"column:mid;primaryKey;autoIncrement:false;uniqueIndex:idx_merchants_name_mid"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_merchants_name_mid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
