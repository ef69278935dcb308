package repository

import (
	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderTx(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard flips status only from one of the given source states.
// Zero affected rows means the order was already elsewhere (terminal, usually).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from []entity.OrderStatus, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// UpdateTotalsGuard rewrites the money columns while the order is still open.
func (r *OrderRepository) UpdateTotalsGuard(tx *gorm.DB, orderID uint, subtotal, discount, final decimal.Decimal) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", orderID,
			[]entity.OrderStatus{entity.OrderPending, entity.OrderPreparing}).
		Updates(map[string]any{
			"subtotal":    subtotal,
			"discount":    discount,
			"final_total": final,
		})
	return res.RowsAffected, res.Error
}

// ApplyPromotionGuard stamps a promotion onto an order that has never carried
// one. The promotion_id IS NULL predicate is what serializes concurrent
// redemptions against the same order.
func (r *OrderRepository) ApplyPromotionGuard(tx *gorm.DB, orderID, promoID uint, discount, final decimal.Decimal) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND promotion_id IS NULL AND status IN ?", orderID,
			[]entity.OrderStatus{entity.OrderPending, entity.OrderPreparing}).
		Updates(map[string]any{
			"promotion_id": promoID,
			"discount":     discount,
			"final_total":  final,
		})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateDiscount(tx *gorm.DB, orderID uint, discount, final decimal.Decimal) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{"discount": discount, "final_total": final}).Error
}

// ListActive returns the waiter/receptionist working set: open orders plus,
// when includeUnpaid is set, completed orders that have no payment yet.
func (r *OrderRepository) ListActive(includeUnpaid bool) ([]entity.Order, error) {
	open := []entity.OrderStatus{entity.OrderPending, entity.OrderPreparing}
	q := r.DB.Model(&entity.Order{})
	if includeUnpaid {
		paid := r.DB.Model(&entity.PaymentRecord{}).
			Select("invoices.order_id").
			Joins("JOIN invoices ON invoices.id = payment_records.invoice_id")
		q = q.Where("status IN ? OR (status = ? AND id NOT IN (?))",
			open, entity.OrderCompleted, paid)
	} else {
		q = q.Where("status IN ?", open)
	}
	var out []entity.Order
	err := q.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByTable(tableID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("table_id = ?", tableID).Order("id DESC").Find(&out).Error
	return out, err
}

// ---------------- Order details ----------------

func (r *OrderRepository) CreateDetail(tx *gorm.DB, d *entity.OrderDetail) error {
	return tx.Create(d).Error
}

func (r *OrderRepository) GetDetail(detailID uint) (*entity.OrderDetail, error) {
	var d entity.OrderDetail
	if err := r.DB.First(&d, detailID).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *OrderRepository) ListDetails(orderID uint) ([]entity.OrderDetail, error) {
	var out []entity.OrderDetail
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListDetailsTx(tx *gorm.DB, orderID uint) ([]entity.OrderDetail, error) {
	var out []entity.OrderDetail
	err := tx.Where("order_id = ?", orderID).Order("id").Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateDetail(tx *gorm.DB, detailID uint, updates map[string]any) error {
	return tx.Model(&entity.OrderDetail{}).Where("id = ?", detailID).Updates(updates).Error
}

func (r *OrderRepository) DeleteDetail(tx *gorm.DB, detailID uint) error {
	return tx.Delete(&entity.OrderDetail{}, detailID).Error
}

// Subtotal over non-cancelled line items. Summed in Go so the decimal scale
// never leaves our hands.
func (r *OrderRepository) SubtotalOf(tx *gorm.DB, orderID uint) (decimal.Decimal, error) {
	var details []entity.OrderDetail
	if err := tx.Where("order_id = ? AND status <> ?", orderID, entity.DetailCancelled).
		Find(&details).Error; err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, d := range details {
		sum = sum.Add(d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Qty))))
	}
	return sum, nil
}
