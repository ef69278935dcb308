package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/pkg/receipt"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrMethodNotFound  = errors.New("payment method not found")
	ErrAmountInvalid   = errors.New("amount must be positive")
	ErrAlreadyPaid     = errors.New("order is already paid")
)

type BillingService struct {
	DB      *gorm.DB
	Repo    *repository.InvoiceRepository
	Orders  *repository.OrderRepository
	Tables  *repository.TableRepository
	Catalog *repository.CatalogRepository
	Events  Events
}

func NewBillingService(
	db *gorm.DB,
	repo *repository.InvoiceRepository,
	orders *repository.OrderRepository,
	tables *repository.TableRepository,
	catalog *repository.CatalogRepository,
	events Events,
) *BillingService {
	if events == nil {
		events = NopEvents{}
	}
	return &BillingService{DB: db, Repo: repo, Orders: orders, Tables: tables, Catalog: catalog, Events: events}
}

func invoiceNumber(id uint) string {
	return fmt.Sprintf("INV-%06d", id)
}

// getOrCreateInvoice runs inside tx. The unique index on invoices.order_id
// makes this safe under concurrent payment attempts: the loser of the insert
// race re-reads the winner's row.
func (s *BillingService) getOrCreateInvoice(tx *gorm.DB, order *entity.Order, staffID uint) (*entity.Invoice, error) {
	if inv, err := s.Repo.GetByOrder(tx, order.ID); err == nil {
		return inv, nil
	}

	inv := entity.Invoice{
		OrderID:    order.ID,
		Subtotal:   order.Subtotal,
		Discount:   order.Discount,
		FinalTotal: order.FinalTotal,
		StaffID:    staffID,
		IssuedAt:   time.Now(),
	}
	if err := s.Repo.Create(tx, &inv); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.Repo.GetByOrder(tx, order.ID)
		}
		return nil, err
	}
	inv.InvoiceNo = invoiceNumber(inv.ID)
	if err := s.Repo.SetNumber(tx, inv.ID, inv.InvoiceNo); err != nil {
		return nil, err
	}
	return &inv, nil
}

// GenerateInvoice is idempotent get-or-create: the same invoice comes back
// no matter how often it is called.
func (s *BillingService) GenerateInvoice(orderID, staffID uint) (*entity.Invoice, error) {
	order, err := s.Orders.GetOrder(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	var inv *entity.Invoice
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		inv, err = s.getOrCreateInvoice(tx, order, staffID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// ApplyDiscount adds a manual register discount on top of whatever the order
// carries (promotion included) and mirrors it into an issued invoice.
// Blocked once a payment exists.
func (s *BillingService) ApplyDiscount(orderID uint, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountInvalid
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Orders.GetOrderTx(tx, orderID)
		if err != nil {
			return ErrOrderNotFound
		}
		if order.Status == entity.OrderCancelled {
			return ErrOrderClosed
		}

		inv, invErr := s.Repo.GetByOrder(tx, orderID)
		if invErr == nil {
			payments, err := s.Repo.ListPayments(inv.ID)
			if err != nil {
				return err
			}
			if len(payments) > 0 {
				return ErrAlreadyPaid
			}
		}

		discount := order.Discount.Add(amount).Round(2)
		final := order.Subtotal.Sub(discount)
		if final.IsNegative() {
			final = decimal.Zero
		}
		if err := s.Orders.UpdateDiscount(tx, orderID, discount, final); err != nil {
			return err
		}
		if invErr == nil {
			return s.Repo.MirrorDiscount(tx, inv.ID, discount, final)
		}
		return nil
	})
}

// ProcessPayment records a payment against an existing invoice. Amounts are
// recorded as given; partial and over payments are allowed and the register
// reconciles them, the settlement path below is the authoritative flow.
func (s *BillingService) ProcessPayment(orderID, methodID uint, amount decimal.Decimal, notes string) (*entity.PaymentRecord, error) {
	if !amount.IsPositive() {
		return nil, ErrAmountInvalid
	}
	inv, err := s.Repo.GetByOrder(s.DB, orderID)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}
	ok, err := s.Repo.PaymentMethodExists(methodID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMethodNotFound
	}

	p := entity.PaymentRecord{
		InvoiceID:       inv.ID,
		PaymentMethodID: methodID,
		Amount:          amount.Round(2),
		PaidAt:          time.Now(),
		Notes:           notes,
	}
	if err := s.Repo.CreatePayment(s.DB, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

type SettlementRes struct {
	InvoiceID  uint            `json:"invoiceId"`
	InvoiceNo  string          `json:"invoiceNo"`
	PaymentID  uint            `json:"paymentId"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
}

// ProcessCompletePayment is the waiter settlement flow: get-or-create the
// invoice, record the full payment, complete the order and release its table.
// A dine-in table never shows Available while its order is unpaid, and always
// returns to Available once paid.
func (s *BillingService) ProcessCompletePayment(orderID, methodID, staffID uint, notes string) (*SettlementRes, error) {
	ok, err := s.Repo.PaymentMethodExists(methodID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMethodNotFound
	}

	var out SettlementRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Orders.GetOrderTx(tx, orderID)
		if err != nil {
			return ErrOrderNotFound
		}
		if order.Status == entity.OrderCancelled {
			return ErrOrderClosed
		}

		inv, err := s.getOrCreateInvoice(tx, order, staffID)
		if err != nil {
			return err
		}
		payments, err := s.Repo.ListPayments(inv.ID)
		if err != nil {
			return err
		}
		if len(payments) > 0 {
			return ErrAlreadyPaid
		}

		p := entity.PaymentRecord{
			InvoiceID:       inv.ID,
			PaymentMethodID: methodID,
			Amount:          inv.FinalTotal,
			PaidAt:          time.Now(),
			Notes:           notes,
		}
		if err := s.Repo.CreatePayment(tx, &p); err != nil {
			return err
		}

		// completed-but-unpaid orders settle too, so zero affected rows is
		// fine when the order is already Completed
		if order.Status != entity.OrderCompleted {
			affected, err := s.Orders.UpdateStatusGuard(tx, order.ID,
				[]entity.OrderStatus{entity.OrderPending, entity.OrderPreparing}, entity.OrderCompleted)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrOrderClosed
			}
		}

		if order.OrderType == entity.OrderDineIn && order.TableID != nil {
			if _, err := s.Tables.SetStatusGuard(tx, *order.TableID,
				[]entity.TableStatus{entity.TableOccupied}, entity.TableAvailable); err != nil {
				return err
			}
		}

		out = SettlementRes{
			InvoiceID:  inv.ID,
			InvoiceNo:  inv.InvoiceNo,
			PaymentID:  p.ID,
			AmountPaid: p.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, _ := s.Orders.GetOrder(orderID)
	var tableID *uint
	if order != nil {
		tableID = order.TableID
	}
	s.Events.Publish(Event{Kind: "order_settled", OrderID: orderID, TableID: tableID})
	return &out, nil
}

// ExportInvoicePDF renders the fixed-layout receipt for an invoice.
func (s *BillingService) ExportInvoicePDF(invoiceID uint) ([]byte, error) {
	inv, err := s.Repo.Get(invoiceID)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}
	order, err := s.Orders.GetOrder(inv.OrderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	details, err := s.Orders.ListDetails(order.ID)
	if err != nil {
		return nil, err
	}

	view := receipt.View{
		InvoiceNo:    inv.InvoiceNo,
		IssuedAt:     inv.IssuedAt,
		CustomerName: order.CustomerName,
		Subtotal:     inv.Subtotal,
		Discount:     inv.Discount,
		Total:        inv.FinalTotal,
	}
	if order.TableID != nil {
		view.TableName = unknownTableName
		if t, err := s.Tables.Get(*order.TableID); err == nil {
			view.TableName = t.TableName
		}
	}
	for _, d := range details {
		if d.Status == entity.DetailCancelled {
			continue
		}
		name := unknownItemName
		if d.DishID != nil {
			if n := s.Catalog.DishName(*d.DishID); n != "" {
				name = n
			}
		} else if d.ComboID != nil {
			if n := s.Catalog.ComboName(*d.ComboID); n != "" {
				name = n
			}
		}
		view.Lines = append(view.Lines, receipt.Line{
			Name:      name,
			Qty:       d.Qty,
			UnitPrice: d.UnitPrice,
			Total:     d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Qty))),
		})
	}
	if p, err := s.Repo.FirstPayment(inv.ID); err == nil {
		view.PaidAmount = p.Amount
		view.PaymentMethod = s.Repo.MethodName(p.PaymentMethodID)
	}

	return receipt.Render(view)
}
