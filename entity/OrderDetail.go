package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DetailStatus string

const (
	DetailPending   DetailStatus = "pending"
	DetailPreparing DetailStatus = "preparing"
	DetailReady     DetailStatus = "ready"
	DetailCancelled DetailStatus = "cancelled"
)

// OrderDetail is one line item. Exactly one of DishID/ComboID is set.
// UnitPrice is snapshotted from the catalog at creation and never recomputed.
type OrderDetail struct {
	gorm.Model
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"unitPrice"`

	Status   DetailStatus `gorm:"size:20;default:pending" json:"status"`
	Refunded bool         `json:"refunded"`
	Notes    string       `json:"notes"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID *uint `json:"dishId,omitempty"`
	Dish   *Dish `json:"-"` // preload only when the dish name is needed

	ComboID *uint  `json:"comboId,omitempty"`
	Combo   *Combo `json:"-"`
}
