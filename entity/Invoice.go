package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice is created exactly once per order (unique index on order_id) and
// snapshots the order's totals at generation time.
type Invoice struct {
	gorm.Model
	InvoiceNo string `gorm:"size:30" json:"invoiceNo"`

	OrderID uint  `gorm:"uniqueIndex;not null" json:"orderId"`
	Order   Order `json:"-"`

	Subtotal   decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	Discount   decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount"`
	FinalTotal decimal.Decimal `gorm:"type:decimal(12,2)" json:"finalTotal"`

	StaffID  uint      `json:"staffId"`
	Staff    Staff     `json:"-"`
	IssuedAt time.Time `json:"issuedAt"`

	Payments []PaymentRecord `json:"-"`
}

type PaymentRecord struct {
	gorm.Model
	Amount decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	PaidAt time.Time       `json:"paidAt"`
	Notes  string          `json:"notes"`

	InvoiceID uint    `json:"invoiceId"`
	Invoice   Invoice `json:"-"`

	PaymentMethodID uint          `json:"paymentMethodId"`
	PaymentMethod   PaymentMethod `json:"-"` // preload only when the method name is needed
}

type PaymentMethod struct {
	gorm.Model
	MethodName string `gorm:"size:100;uniqueIndex;not null" json:"methodName"`

	Payments []PaymentRecord `json:"-"`
}
