package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderType string

const (
	OrderDineIn   OrderType = "DINEIN"
	OrderTakeaway OrderType = "TAKEAWAY"
	OrderQR       OrderType = "QR"
)

// Order status codes. Completed and Cancelled are terminal.
type OrderStatus uint

const (
	OrderPending   OrderStatus = 1
	OrderPreparing OrderStatus = 2
	OrderCompleted OrderStatus = 3
	OrderCancelled OrderStatus = 4
)

type Order struct {
	gorm.Model
	OrderType    OrderType `gorm:"size:20;not null" json:"orderType"`
	CustomerName string    `gorm:"size:150" json:"customerName"`
	Phone        string    `gorm:"size:20" json:"phone"`

	Subtotal   decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	Discount   decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount"`
	FinalTotal decimal.Decimal `gorm:"type:decimal(12,2)" json:"finalTotal"`

	Status   OrderStatus `gorm:"default:1;index" json:"status"`
	Refunded bool        `json:"refunded"`
	Notes    string      `json:"notes"`

	TableID *uint  `json:"tableId,omitempty"`
	Table   *Table `json:"-"` // preload only when the table name is needed

	// set once, by promotion application; nil means no promo ever applied
	PromotionID *uint      `json:"promotionId,omitempty"`
	Promotion   *Promotion `json:"-"`

	Details  []OrderDetail `json:"-"`
	Invoice  *Invoice      `gorm:"foreignKey:OrderID" json:"-"`
}
