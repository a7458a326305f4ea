package model

import (
	"time"

	"gorm.io/datatypes"
)

// Production is one production log: a single record per date per
// tenant, with the full client record kept in Payload.
type Production struct {
	ID        int64          `json:"id" gorm:"primaryKey;autoIncrement:false"`
	MID       int64          `json:"mid" gorm:"column:mid;primaryKey;autoIncrement:false;uniqueIndex:idx_productions_date_mid"`
	Date      string         `json:"date" gorm:"type:varchar(32);not null;uniqueIndex:idx_productions_date_mid"`
	Payload   datatypes.JSON `json:"payload" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
