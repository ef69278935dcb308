package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"github.com/stretchr/testify/require"
)

func TestCreateDineInOrderOccupiesTable(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Pad Thai", "120.00")
	table := seedTable(t, db, "T01", entity.TableAvailable, 4, false)

	out, err := svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderDineIn,
		CustomerName: "Ann",
		Phone:        "0812345678",
		TableID:      &table.ID,
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 2}},
	})
	require.NoError(t, err)
	requireDecimal(t, "240.00", out.Subtotal)
	requireDecimal(t, "240.00", out.FinalTotal)
	require.Equal(t, entity.TableOccupied, tableStatus(t, db, table.ID))

	// second party cannot take the same table
	_, err = svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderDineIn,
		CustomerName: "Bob",
		Phone:        "0899999999",
		TableID:      &table.ID,
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 1}},
	})
	require.ErrorIs(t, err, ErrTableOccupied)
}

func TestConcurrentSeatingSingleWinner(t *testing.T) {
	db := newRaceDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Pad Thai", "80.00")
	table := seedTable(t, db, "T01", entity.TableAvailable, 4, false)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, customer := range []string{"Ann", "Bob"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, err := svc.Create(&CreateOrderReq{
				OrderType:    entity.OrderDineIn,
				CustomerName: name,
				Phone:        "0812345678",
				TableID:      &table.ID,
				Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 1}},
			})
			errs <- err
		}(customer)
	}
	wg.Wait()
	close(errs)

	var seated, refused int
	for err := range errs {
		switch {
		case err == nil:
			seated++
		case errors.Is(err, ErrTableOccupied):
			refused++
		default:
			t.Fatalf("unexpected create error: %v", err)
		}
	}
	require.Equal(t, 1, seated)
	require.Equal(t, 1, refused)
	require.Equal(t, entity.TableOccupied, tableStatus(t, db, table.ID))

	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Where("table_id = ?", table.ID).Count(&orders).Error)
	require.EqualValues(t, 1, orders)
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Green Curry", "95.50")

	_, err := svc.Create(&CreateOrderReq{
		OrderType: entity.OrderTakeaway,
		Items:     []OrderItemIn{{DishID: &dish.ID, Qty: 1}},
	})
	require.ErrorIs(t, err, ErrCustomerRequired)

	_, err = svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Ann",
		Phone:        "0812345678",
	})
	require.ErrorIs(t, err, ErrItemsRequired)

	_, err = svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Ann",
		Phone:        "0812345678",
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 0}},
	})
	require.ErrorIs(t, err, ErrQtyInvalid)

	// a line must reference exactly one of dish/combo
	combo := seedCombo(t, db, "Set A", "250.00")
	_, err = svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Ann",
		Phone:        "0812345678",
		Items:        []OrderItemIn{{DishID: &dish.ID, ComboID: &combo.ID, Qty: 1}},
	})
	require.ErrorIs(t, err, ErrItemInvalid)

	missing := uint(9999)
	_, err = svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Ann",
		Phone:        "0812345678",
		Items:        []OrderItemIn{{DishID: &missing, Qty: 1}},
	})
	require.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestQROrderNeedsNoCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Fried Rice", "80.00")
	table := seedTable(t, db, "T02", entity.TableOccupied, 2, false)

	out, err := svc.Create(&CreateOrderReq{
		OrderType: entity.OrderQR,
		TableID:   &table.ID,
		Items:     []OrderItemIn{{DishID: &dish.ID, Qty: 1}},
	})
	require.NoError(t, err)
	requireDecimal(t, "80.00", out.Subtotal)
}

func TestPricesComeFromCatalogNotClient(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Tom Yum", "150.00")

	out, err := svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Ann",
		Phone:        "0812345678",
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 3}},
	})
	require.NoError(t, err)
	requireDecimal(t, "450.00", out.Subtotal)

	var d entity.OrderDetail
	require.NoError(t, db.Where("order_id = ?", out.ID).First(&d).Error)
	requireDecimal(t, "150.00", d.UnitPrice)
}

func TestItemMutationsRecomputeTotals(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Spring Rolls", "60.00")
	other := seedDish(t, db, "Mango Sticky Rice", "90.00")

	out, err := svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Ann",
		Phone:        "0812345678",
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 2}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddItem(out.ID, OrderItemIn{DishID: &other.ID, Qty: 1}))
	detail, err := svc.Detail(out.ID)
	require.NoError(t, err)
	requireDecimal(t, "210.00", detail.Subtotal)
	require.Len(t, detail.Items, 2)

	var added entity.OrderDetail
	require.NoError(t, db.Where("order_id = ? AND dish_id = ?", out.ID, other.ID).First(&added).Error)

	require.NoError(t, svc.UpdateItem(out.ID, added.ID, 3, "less sweet"))
	detail, err = svc.Detail(out.ID)
	require.NoError(t, err)
	requireDecimal(t, "390.00", detail.Subtotal)

	require.NoError(t, svc.RemoveItem(out.ID, added.ID))
	detail, err = svc.Detail(out.ID)
	require.NoError(t, err)
	requireDecimal(t, "120.00", detail.Subtotal)

	require.ErrorIs(t, svc.RemoveItem(out.ID, added.ID), ErrDetailNotFound)
}

func TestClosedOrderRejectsMutation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Satay", "70.00")

	out, err := svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Ann",
		Phone:        "0812345678",
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(out.ID, entity.OrderCancelled))

	require.ErrorIs(t, svc.AddItem(out.ID, OrderItemIn{DishID: &dish.ID, Qty: 1}), ErrOrderClosed)
	require.ErrorIs(t, svc.UpdateStatus(out.ID, entity.OrderCancelled), ErrOrderClosed)
}

func TestOrderTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Larb", "85.00")

	out, err := svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Ann",
		Phone:        "0812345678",
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 1}},
	})
	require.NoError(t, err)

	// pending cannot jump straight to completed
	require.ErrorIs(t, svc.UpdateStatus(out.ID, entity.OrderCompleted), ErrOrderClosed)
	require.ErrorIs(t, svc.UpdateStatus(out.ID, entity.OrderPending), ErrBadTransition)

	require.NoError(t, svc.UpdateStatus(out.ID, entity.OrderPreparing))
	require.NoError(t, svc.UpdateStatus(out.ID, entity.OrderCompleted))
	require.ErrorIs(t, svc.UpdateStatus(out.ID, entity.OrderCancelled), ErrOrderClosed)
}

func TestCancelDineInFreesTable(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Omelette", "50.00")
	table := seedTable(t, db, "T03", entity.TableAvailable, 2, false)

	out, err := svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderDineIn,
		CustomerName: "Ann",
		Phone:        "0812345678",
		TableID:      &table.ID,
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, entity.TableOccupied, tableStatus(t, db, table.ID))

	require.NoError(t, svc.UpdateStatus(out.ID, entity.OrderCancelled))
	require.Equal(t, entity.TableAvailable, tableStatus(t, db, table.ID))
}

func TestItemStatusFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Noodles", "65.00")
	other := seedDish(t, db, "Iced Tea", "35.00")

	out, err := svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Ann",
		Phone:        "0812345678",
		Items: []OrderItemIn{
			{DishID: &dish.ID, Qty: 2},
			{DishID: &other.ID, Qty: 1},
		},
	})
	require.NoError(t, err)

	var details []entity.OrderDetail
	require.NoError(t, db.Where("order_id = ?", out.ID).Order("id").Find(&details).Error)
	require.Len(t, details, 2)

	require.NoError(t, svc.UpdateItemStatus(out.ID, details[0].ID, entity.DetailPreparing))
	require.NoError(t, svc.UpdateItemStatus(out.ID, details[0].ID, entity.DetailReady))
	// ready is terminal for the kitchen
	require.ErrorIs(t, svc.UpdateItemStatus(out.ID, details[0].ID, entity.DetailPreparing), ErrBadTransition)

	// cancelling a line drops it from the subtotal
	require.NoError(t, svc.UpdateItemStatus(out.ID, details[1].ID, entity.DetailCancelled))
	detail, err := svc.Detail(out.ID)
	require.NoError(t, err)
	requireDecimal(t, "130.00", detail.Subtotal)
}

func TestDetailProjection(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Papaya Salad", "75.00")
	table := seedTable(t, db, "Window 1", entity.TableAvailable, 2, true)

	out, err := svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderDineIn,
		CustomerName: "Ann",
		Phone:        "0812345678",
		TableID:      &table.ID,
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 1}},
	})
	require.NoError(t, err)

	detail, err := svc.Detail(out.ID)
	require.NoError(t, err)
	require.Equal(t, "Window 1", detail.TableName)
	require.Len(t, detail.Items, 1)
	require.Equal(t, "Papaya Salad", detail.Items[0].ItemName)

	_, err = svc.Detail(9999)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestActiveOrdersFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	billing := newBillingService(db)
	method := seedMethod(t, db, "Cash")
	dish := seedDish(t, db, "Dumplings", "55.00")

	open, err := svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Ann",
		Phone:        "0812345678",
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 1}},
	})
	require.NoError(t, err)

	done, err := svc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Bob",
		Phone:        "0899999999",
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 2}},
	})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(done.ID, entity.OrderPreparing))
	require.NoError(t, svc.UpdateStatus(done.ID, entity.OrderCompleted))

	active, err := svc.ActiveOrders(false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, open.ID, active[0].ID)

	// completed but unpaid shows up with the flag
	withUnpaid, err := svc.ActiveOrders(true)
	require.NoError(t, err)
	require.Len(t, withUnpaid, 2)

	_, err = billing.ProcessCompletePayment(done.ID, method.ID, 1, "")
	require.NoError(t, err)

	withUnpaid, err = svc.ActiveOrders(true)
	require.NoError(t, err)
	require.Len(t, withUnpaid, 1)
	require.Equal(t, open.ID, withUnpaid[0].ID)
}
