package model

import (
	"time"

	"gorm.io/datatypes"
)

// Bill is one point-of-sale receipt. The id is derived client-side (an
// explicit id, else the bill number, else a timestamp) so only (id, mid)
// has to be unique; bill numbers may repeat across terminals. The full
// client record is kept verbatim in Payload.
type Bill struct {
	ID         int64          `json:"id" gorm:"primaryKey;autoIncrement:false"`
	MID        int64          `json:"mid" gorm:"column:mid;primaryKey;autoIncrement:false"`
	BillNumber string         `json:"bill_number" gorm:"type:varchar(100);index"`
	Payload    datatypes.JSON `json:"payload" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
