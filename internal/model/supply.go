package model

import (
	"time"
)

// Supply is a named supply entry. It carries no payload beyond its
// name; re-syncing an existing supply only refreshes updated_at.
type Supply struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	MID       int64     `json:"mid" gorm:"column:mid;primaryKey;autoIncrement:false;uniqueIndex:idx_supplies_name_mid"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_supplies_name_mid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the default pluralization
func (Supply) TableName() string {
	return "supplies"
}
