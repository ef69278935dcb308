package repository

import (
	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	DB *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

func (r *InvoiceRepository) Create(tx *gorm.DB, inv *entity.Invoice) error {
	return tx.Create(inv).Error
}

func (r *InvoiceRepository) Get(id uint) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := r.DB.First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) GetByOrder(tx *gorm.DB, orderID uint) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := tx.Where("order_id = ?", orderID).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) SetNumber(tx *gorm.DB, invoiceID uint, number string) error {
	return tx.Model(&entity.Invoice{}).Where("id = ?", invoiceID).
		Update("invoice_no", number).Error
}

// MirrorDiscount keeps an already-issued invoice in line with a pre-payment
// discount adjustment on its order.
func (r *InvoiceRepository) MirrorDiscount(tx *gorm.DB, invoiceID uint, discount, final decimal.Decimal) error {
	return tx.Model(&entity.Invoice{}).Where("id = ?", invoiceID).
		Updates(map[string]any{"discount": discount, "final_total": final}).Error
}

// ---------------- Payments ----------------

func (r *InvoiceRepository) CreatePayment(tx *gorm.DB, p *entity.PaymentRecord) error {
	return tx.Create(p).Error
}

func (r *InvoiceRepository) FirstPayment(invoiceID uint) (*entity.PaymentRecord, error) {
	var p entity.PaymentRecord
	if err := r.DB.Where("invoice_id = ?", invoiceID).Order("id").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *InvoiceRepository) ListPayments(invoiceID uint) ([]entity.PaymentRecord, error) {
	var out []entity.PaymentRecord
	err := r.DB.Where("invoice_id = ?", invoiceID).Order("id").Find(&out).Error
	return out, err
}

func (r *InvoiceRepository) PaymentMethodExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.PaymentMethod{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *InvoiceRepository) MethodName(id uint) string {
	var row struct{ MethodName string }
	if err := r.DB.Model(&entity.PaymentMethod{}).Select("method_name").
		Where("id = ?", id).Limit(1).Scan(&row).Error; err != nil {
		return ""
	}
	return row.MethodName
}
