package model

import (
	"time"
)

// Product is one catalog entry. Pricing fields are each independently
// defaulted when the client omits them; a re-sync replaces all of them
// with the incoming values.
type Product struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	MID            int64     `json:"mid" gorm:"column:mid;primaryKey;autoIncrement:false;uniqueIndex:idx_products_name_mid"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_products_name_mid"`
	Price          float64   `json:"price"`
	WholesalePrice float64   `json:"wholesale_price"`
	SalePrice      float64   `json:"sale_price"`
	Discount       float64   `json:"discount"`
	TaxRate        float64   `json:"tax_rate"`
	Unit           string    `json:"unit" gorm:"type:varchar(32)"`
	EffectiveDate  string    `json:"effective_date" gorm:"type:varchar(32)"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
