package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Promotion struct {
	gorm.Model
	// stored upper-case; lookups are case-insensitive
	PromoCode   string `gorm:"size:50;uniqueIndex;not null" json:"promoCode"`
	PromoName   string `gorm:"size:150" json:"promoName"`
	PromoDetail string `json:"promoDetail"`

	// percent wins over the fixed amount when > 0
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2)" json:"discountPercent"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(12,2)" json:"discountAmount"`

	// validity window, inclusive by calendar date
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	// nil = unlimited; only ever decreases, never below 0
	UsageLimit *int `json:"usageLimit,omitempty"`
	IsActive   bool `gorm:"default:true" json:"isActive"`

	Usages []PromoUsage `json:"-"`
}

// PromoUsage is append-only: one row per successful redemption.
type PromoUsage struct {
	gorm.Model
	PromotionID uint      `json:"promotionId"`
	Promotion   Promotion `json:"-"`

	// nil for walk-ins with no phone on the order
	Phone  *string   `gorm:"size:20" json:"phone,omitempty"`
	UsedAt time.Time `json:"usedAt"`
}
