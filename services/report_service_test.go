package services

import (
	"testing"
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"

	"github.com/stretchr/testify/require"
)

func TestSalesReport(t *testing.T) {
	db := newTestDB(t)
	orderSvc := newOrderService(db)
	billing := newBillingService(db)
	reports := NewReportService(repository.NewReportRepository(db))

	method := seedMethod(t, db, "Cash")
	noodles := seedDish(t, db, "Noodles", "100.00")
	tea := seedDish(t, db, "Iced Tea", "30.00")
	table := seedTable(t, db, "T01", entity.TableAvailable, 4, false)

	paid, err := orderSvc.Create(&CreateOrderReq{
		OrderType:    entity.OrderDineIn,
		CustomerName: "Ann",
		Phone:        "0812345678",
		TableID:      &table.ID,
		Items: []OrderItemIn{
			{DishID: &noodles.ID, Qty: 2},
			{DishID: &tea.ID, Qty: 3},
		},
	})
	require.NoError(t, err)
	_, err = billing.ProcessCompletePayment(paid.ID, method.ID, 1, "")
	require.NoError(t, err)

	// open orders stay out of the numbers
	_, err = orderSvc.Create(&CreateOrderReq{
		OrderType:    entity.OrderTakeaway,
		CustomerName: "Bob",
		Phone:        "0899999999",
		Items:        []OrderItemIn{{DishID: &noodles.ID, Qty: 5}},
	})
	require.NoError(t, err)

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	report, err := reports.Sales(from, to, 5)
	require.NoError(t, err)

	require.EqualValues(t, 1, report.Revenue.Orders)
	require.InDelta(t, 290.0, report.Revenue.Gross, 0.001)
	require.InDelta(t, 290.0, report.Revenue.Net, 0.001)

	require.Len(t, report.TopDishes, 2)
	require.Equal(t, "Iced Tea", report.TopDishes[0].DishName)
	require.EqualValues(t, 3, report.TopDishes[0].Qty)
	require.Equal(t, "Noodles", report.TopDishes[1].DishName)
	require.InDelta(t, 200.0, report.TopDishes[1].Revenue, 0.001)

	require.Len(t, report.Turnover, 1)
	require.Equal(t, "T01", report.Turnover[0].TableName)
	require.EqualValues(t, 1, report.Turnover[0].Orders)
	require.InDelta(t, 290.0, report.Turnover[0].Net, 0.001)
}
