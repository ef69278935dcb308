package services

import (
	"errors"
	"fmt"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// sentinel errors the controllers map onto HTTP statuses
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrTableNotFound    = errors.New("table not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrItemsRequired    = errors.New("items is required")
	ErrCustomerRequired = errors.New("customer name and phone are required")
	ErrItemInvalid      = errors.New("line item must reference exactly one dish or combo")
	ErrQtyInvalid       = errors.New("qty must be at least 1")
	ErrOrderClosed      = errors.New("order already completed or cancelled")
	ErrTableOccupied    = errors.New("table is not available")
	ErrDetailNotFound   = errors.New("order item not found")
	ErrBadTransition    = errors.New("invalid status transition")
)

type OrderService struct {
	DB      *gorm.DB
	Repo    *repository.OrderRepository
	Catalog *repository.CatalogRepository
	Tables  *repository.TableRepository
	Events  Events
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	catalog *repository.CatalogRepository,
	tables *repository.TableRepository,
	events Events,
) *OrderService {
	if events == nil {
		events = NopEvents{}
	}
	return &OrderService{DB: db, Repo: repo, Catalog: catalog, Tables: tables, Events: events}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	DishID  *uint  `json:"dishId"`
	ComboID *uint  `json:"comboId"`
	Qty     int    `json:"qty"`
	Notes   string `json:"notes"`
}

type CreateOrderReq struct {
	OrderType    entity.OrderType `json:"orderType"`
	CustomerName string           `json:"customerName"`
	Phone        string           `json:"phone"`
	TableID      *uint            `json:"tableId"`
	Notes        string           `json:"notes"`
	Items        []OrderItemIn    `json:"items"`
	// Client-supplied prices are never accepted; every path re-prices
	// from the catalog, the QR path included.
}

type CreateOrderRes struct {
	ID         uint            `json:"id"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	FinalTotal decimal.Decimal `json:"finalTotal"`
}

// priced line, unit price snapshotted from the catalog
type pricedItem struct {
	dishID    *uint
	comboID   *uint
	qty       int
	notes     string
	unitPrice decimal.Decimal
}

func (s *OrderService) priceItems(items []OrderItemIn) ([]pricedItem, decimal.Decimal, error) {
	subtotal := decimal.Zero
	out := make([]pricedItem, 0, len(items))
	for _, it := range items {
		if it.Qty < 1 {
			return nil, decimal.Zero, ErrQtyInvalid
		}
		if (it.DishID == nil) == (it.ComboID == nil) {
			return nil, decimal.Zero, ErrItemInvalid
		}
		var unit decimal.Decimal
		if it.DishID != nil {
			d, err := s.Catalog.GetDish(*it.DishID)
			if err != nil {
				return nil, decimal.Zero, ErrMenuItemNotFound
			}
			unit = d.Price
		} else {
			c, err := s.Catalog.GetCombo(*it.ComboID)
			if err != nil {
				return nil, decimal.Zero, ErrMenuItemNotFound
			}
			unit = c.Price
		}
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(it.Qty))))
		out = append(out, pricedItem{
			dishID: it.DishID, comboID: it.ComboID,
			qty: it.Qty, notes: it.Notes, unitPrice: unit,
		})
	}
	return out, subtotal, nil
}

// ----- Create -----

func (s *OrderService) Create(req *CreateOrderReq) (*CreateOrderRes, error) {
	var out *CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = s.create(tx, req, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.Events.Publish(Event{Kind: "order_created", OrderID: out.ID, TableID: req.TableID})
	return out, nil
}

// CreateFromReservation is the check-in path: the reservation already carries
// the customer, and the table may be coming out of Reserved. It runs inside
// the caller's transaction so a failed check-in rolls back whole; the caller
// publishes order_created after committing.
func (s *OrderService) CreateFromReservation(tx *gorm.DB, req *CreateOrderReq) (*CreateOrderRes, error) {
	return s.create(tx, req, true)
}

func (s *OrderService) create(tx *gorm.DB, req *CreateOrderReq, fromReservation bool) (*CreateOrderRes, error) {
	switch req.OrderType {
	case entity.OrderDineIn, entity.OrderTakeaway, entity.OrderQR:
	default:
		return nil, fmt.Errorf("unknown order type %q", req.OrderType)
	}
	if len(req.Items) == 0 && !fromReservation {
		return nil, ErrItemsRequired
	}

	needsCustomer := req.OrderType == entity.OrderTakeaway ||
		(req.OrderType == entity.OrderDineIn && !fromReservation)
	if needsCustomer && (req.CustomerName == "" || req.Phone == "") {
		return nil, ErrCustomerRequired
	}

	priced, subtotal, err := s.priceItems(req.Items)
	if err != nil {
		return nil, err
	}

	if req.OrderType == entity.OrderDineIn && req.TableID != nil {
		if _, err := s.Tables.Get(*req.TableID); err != nil {
			return nil, ErrTableNotFound
		}
		from := []entity.TableStatus{entity.TableAvailable}
		if fromReservation {
			from = append(from, entity.TableReserved)
		}
		affected, err := s.Tables.SetStatusGuard(tx, *req.TableID, from, entity.TableOccupied)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, ErrTableOccupied
		}
	}

	order := entity.Order{
		OrderType:    req.OrderType,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		TableID:      req.TableID,
		Subtotal:     subtotal,
		Discount:     decimal.Zero,
		FinalTotal:   subtotal,
		Status:       entity.OrderPending,
		Notes:        req.Notes,
	}
	if err := s.Repo.CreateOrder(tx, &order); err != nil {
		return nil, err
	}

	for _, p := range priced {
		d := entity.OrderDetail{
			OrderID:   order.ID,
			DishID:    p.dishID,
			ComboID:   p.comboID,
			Qty:       p.qty,
			UnitPrice: p.unitPrice,
			Status:    entity.DetailPending,
			Notes:     p.notes,
		}
		if err := s.Repo.CreateDetail(tx, &d); err != nil {
			return nil, err
		}
	}

	return &CreateOrderRes{ID: order.ID, Subtotal: order.Subtotal, FinalTotal: order.FinalTotal}, nil
}

// ----- Line item mutations -----

// recomputeTotals re-derives subtotal from non-cancelled items and re-clamps
// finalTotal = max(subtotal - discount, 0). Runs inside the caller's tx.
func (s *OrderService) recomputeTotals(tx *gorm.DB, o *entity.Order) error {
	subtotal, err := s.Repo.SubtotalOf(tx, o.ID)
	if err != nil {
		return err
	}
	final := subtotal.Sub(o.Discount)
	if final.IsNegative() {
		final = decimal.Zero
	}
	affected, err := s.Repo.UpdateTotalsGuard(tx, o.ID, subtotal, o.Discount, final)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderClosed
	}
	return nil
}

func (s *OrderService) mutableOrder(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderTx(tx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if o.Status != entity.OrderPending && o.Status != entity.OrderPreparing {
		return nil, ErrOrderClosed
	}
	return o, nil
}

func (s *OrderService) AddItem(orderID uint, item OrderItemIn) error {
	priced, _, err := s.priceItems([]OrderItemIn{item})
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.mutableOrder(tx, orderID)
		if err != nil {
			return err
		}
		d := entity.OrderDetail{
			OrderID:   o.ID,
			DishID:    priced[0].dishID,
			ComboID:   priced[0].comboID,
			Qty:       priced[0].qty,
			UnitPrice: priced[0].unitPrice,
			Status:    entity.DetailPending,
			Notes:     priced[0].notes,
		}
		if err := s.Repo.CreateDetail(tx, &d); err != nil {
			return err
		}
		return s.recomputeTotals(tx, o)
	})
}

func (s *OrderService) UpdateItem(orderID, detailID uint, qty int, notes string) error {
	if qty < 1 {
		return ErrQtyInvalid
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.mutableOrder(tx, orderID)
		if err != nil {
			return err
		}
		d, err := s.Repo.GetDetail(detailID)
		if err != nil || d.OrderID != o.ID {
			return ErrDetailNotFound
		}
		if err := s.Repo.UpdateDetail(tx, detailID, map[string]any{"qty": qty, "notes": notes}); err != nil {
			return err
		}
		return s.recomputeTotals(tx, o)
	})
}

func (s *OrderService) RemoveItem(orderID, detailID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.mutableOrder(tx, orderID)
		if err != nil {
			return err
		}
		d, err := s.Repo.GetDetail(detailID)
		if err != nil || d.OrderID != o.ID {
			return ErrDetailNotFound
		}
		if err := s.Repo.DeleteDetail(tx, detailID); err != nil {
			return err
		}
		return s.recomputeTotals(tx, o)
	})
}

// ----- Projections -----

func (s *OrderService) ActiveOrders(includeUnpaid bool) ([]entity.Order, error) {
	return s.Repo.ListActive(includeUnpaid)
}

func (s *OrderService) OrdersByTable(tableID uint) ([]entity.Order, error) {
	return s.Repo.ListByTable(tableID)
}

type OrderLineOut struct {
	entity.OrderDetail
	ItemName string `json:"itemName"`
}

type OrderOut struct {
	entity.Order
	TableName string         `json:"tableName,omitempty"`
	Items     []OrderLineOut `json:"items"`
}

const (
	unknownTableName = "Unknown table"
	unknownItemName  = "Unknown item"
)

func (s *OrderService) Detail(orderID uint) (*OrderOut, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	details, err := s.Repo.ListDetails(o.ID)
	if err != nil {
		return nil, err
	}

	out := OrderOut{Order: *o}
	if o.TableID != nil {
		// relation may be dangling after a table delete; fall back
		if t, err := s.Tables.Get(*o.TableID); err == nil {
			out.TableName = t.TableName
		} else {
			out.TableName = unknownTableName
		}
	}
	for _, d := range details {
		line := OrderLineOut{OrderDetail: d, ItemName: unknownItemName}
		if d.DishID != nil {
			if name := s.Catalog.DishName(*d.DishID); name != "" {
				line.ItemName = name
			}
		} else if d.ComboID != nil {
			if name := s.Catalog.ComboName(*d.ComboID); name != "" {
				line.ItemName = name
			}
		}
		out.Items = append(out.Items, line)
	}
	return &out, nil
}
