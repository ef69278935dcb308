package services

import (
	"testing"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoiceIdempotent(t *testing.T) {
	db := newTestDB(t)
	billing := newBillingService(db)
	order := openOrder(t, db, "300.00")

	first, err := billing.GenerateInvoice(order.ID, 1)
	require.NoError(t, err)
	require.Equal(t, "INV-000001", first.InvoiceNo)
	requireDecimal(t, "300.00", first.Subtotal)

	second, err := billing.GenerateInvoice(order.ID, 1)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Invoice{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	_, err = billing.GenerateInvoice(9999, 1)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSettlementCompletesAndFreesTable(t *testing.T) {
	db := newTestDB(t)
	billing := newBillingService(db)
	orderSvc := newOrderService(db)
	method := seedMethod(t, db, "Cash")
	dish := seedDish(t, db, "Duck Noodles", "180.00")
	table := seedTable(t, db, "T05", entity.TableAvailable, 4, false)

	out, err := orderSvc.Create(&CreateOrderReq{
		OrderType:    entity.OrderDineIn,
		CustomerName: "Ann",
		Phone:        "0812345678",
		TableID:      &table.ID,
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, entity.TableOccupied, tableStatus(t, db, table.ID))

	res, err := billing.ProcessCompletePayment(out.ID, method.ID, 1, "paid at counter")
	require.NoError(t, err)
	requireDecimal(t, "360.00", res.AmountPaid)
	require.NotEmpty(t, res.InvoiceNo)

	var order entity.Order
	require.NoError(t, db.First(&order, out.ID).Error)
	require.Equal(t, entity.OrderCompleted, order.Status)
	require.Equal(t, entity.TableAvailable, tableStatus(t, db, table.ID))

	// already paid: no double settlement
	_, err = billing.ProcessCompletePayment(out.ID, method.ID, 1, "")
	require.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestSettlementRejectsCancelledAndUnknownMethod(t *testing.T) {
	db := newTestDB(t)
	billing := newBillingService(db)
	orderSvc := newOrderService(db)
	method := seedMethod(t, db, "Cash")

	order := openOrder(t, db, "50.00")
	_, err := billing.ProcessCompletePayment(order.ID, 9999, 1, "")
	require.ErrorIs(t, err, ErrMethodNotFound)

	require.NoError(t, orderSvc.UpdateStatus(order.ID, entity.OrderCancelled))
	_, err = billing.ProcessCompletePayment(order.ID, method.ID, 1, "")
	require.ErrorIs(t, err, ErrOrderClosed)
}

func TestSettleCompletedButUnpaidOrder(t *testing.T) {
	db := newTestDB(t)
	billing := newBillingService(db)
	orderSvc := newOrderService(db)
	method := seedMethod(t, db, "Cash")

	order := openOrder(t, db, "75.00")
	require.NoError(t, orderSvc.UpdateStatus(order.ID, entity.OrderPreparing))
	require.NoError(t, orderSvc.UpdateStatus(order.ID, entity.OrderCompleted))

	res, err := billing.ProcessCompletePayment(order.ID, method.ID, 1, "")
	require.NoError(t, err)
	requireDecimal(t, "75.00", res.AmountPaid)
}

func TestManualDiscount(t *testing.T) {
	db := newTestDB(t)
	billing := newBillingService(db)
	order := openOrder(t, db, "100.00")

	require.ErrorIs(t, billing.ApplyDiscount(order.ID, decimal.Zero), ErrAmountInvalid)
	require.ErrorIs(t, billing.ApplyDiscount(9999, decimal.RequireFromString("10")), ErrOrderNotFound)

	require.NoError(t, billing.ApplyDiscount(order.ID, decimal.RequireFromString("30.00")))
	// discounts accumulate and the total clamps at zero
	require.NoError(t, billing.ApplyDiscount(order.ID, decimal.RequireFromString("90.00")))

	var o entity.Order
	require.NoError(t, db.First(&o, order.ID).Error)
	requireDecimal(t, "120.00", o.Discount)
	requireDecimal(t, "0.00", o.FinalTotal)
}

func TestManualDiscountMirrorsInvoiceAndLocksAfterPayment(t *testing.T) {
	db := newTestDB(t)
	billing := newBillingService(db)
	method := seedMethod(t, db, "Cash")
	order := openOrder(t, db, "200.00")

	inv, err := billing.GenerateInvoice(order.ID, 1)
	require.NoError(t, err)

	require.NoError(t, billing.ApplyDiscount(order.ID, decimal.RequireFromString("20.00")))
	var mirrored entity.Invoice
	require.NoError(t, db.First(&mirrored, inv.ID).Error)
	requireDecimal(t, "20.00", mirrored.Discount)
	requireDecimal(t, "180.00", mirrored.FinalTotal)

	_, err = billing.ProcessPayment(order.ID, method.ID, decimal.RequireFromString("180.00"), "")
	require.NoError(t, err)

	require.ErrorIs(t, billing.ApplyDiscount(order.ID, decimal.RequireFromString("5.00")), ErrAlreadyPaid)
}

func TestProcessPaymentNeedsInvoice(t *testing.T) {
	db := newTestDB(t)
	billing := newBillingService(db)
	method := seedMethod(t, db, "Cash")
	order := openOrder(t, db, "80.00")

	_, err := billing.ProcessPayment(order.ID, method.ID, decimal.RequireFromString("80.00"), "")
	require.ErrorIs(t, err, ErrInvoiceNotFound)

	_, err = billing.GenerateInvoice(order.ID, 1)
	require.NoError(t, err)

	_, err = billing.ProcessPayment(order.ID, method.ID, decimal.Zero, "")
	require.ErrorIs(t, err, ErrAmountInvalid)
	_, err = billing.ProcessPayment(order.ID, 9999, decimal.RequireFromString("80.00"), "")
	require.ErrorIs(t, err, ErrMethodNotFound)

	p, err := billing.ProcessPayment(order.ID, method.ID, decimal.RequireFromString("50.00"), "partial")
	require.NoError(t, err)
	requireDecimal(t, "50.00", p.Amount)
}

func TestExportInvoicePDF(t *testing.T) {
	db := newTestDB(t)
	billing := newBillingService(db)
	method := seedMethod(t, db, "Credit Card")
	order := openOrder(t, db, "150.00")

	_, err := billing.ExportInvoicePDF(9999)
	require.ErrorIs(t, err, ErrInvoiceNotFound)

	res, err := billing.ProcessCompletePayment(order.ID, method.ID, 1, "")
	require.NoError(t, err)

	pdf, err := billing.ExportInvoicePDF(res.InvoiceID)
	require.NoError(t, err)
	require.True(t, len(pdf) > 4)
	require.Equal(t, "%PDF", string(pdf[:4]))
}
