package model

import (
	"time"
)

// Registration binds a terminal hostname to its issued merchant id.
// The auto-increment ID is that merchant id, so it is server-assigned
// and never changes once the hostname is known. The edit password is
// set on first registration and kept on later syncs; only the contact
// fields and feature flags are refreshable.
type Registration struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	HostName         string    `json:"host_name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name             string    `json:"name" gorm:"type:varchar(255)"`
	Contact          string    `json:"contact" gorm:"type:varchar(100)"`
	Phone            string    `json:"phone" gorm:"type:varchar(20)"`
	Address          string    `json:"address" gorm:"type:text"`
	// Flag defaults are applied by the sync engine on first insert so
	// that an omitted flag on update keeps its stored value.
	EnableInventory  bool      `json:"enable_inventory"`
	EnableProduction bool      `json:"enable_production"`
	EnableBom        bool      `json:"enable_bom"`
	EditPassword     string    `json:"-" gorm:"type:varchar(64)"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
