package services

import (
	"testing"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"github.com/stretchr/testify/require"
)

func TestTableStatusOverride(t *testing.T) {
	db := newTestDB(t)
	svc := newTabService(db)
	table := seedTable(t, db, "T01", entity.TableAvailable, 4, false)

	require.ErrorIs(t, svc.UpdateStatus(9999, entity.TableOccupied), ErrTableNotFound)

	// same status is a no-op success
	require.NoError(t, svc.UpdateStatus(table.ID, entity.TableAvailable))

	require.NoError(t, svc.UpdateStatus(table.ID, entity.TableOccupied))
	require.Equal(t, entity.TableOccupied, tableStatus(t, db, table.ID))

	require.NoError(t, svc.UpdateStatus(table.ID, entity.TableAvailable))
	require.NoError(t, svc.UpdateStatus(table.ID, entity.TableReserved))
	require.NoError(t, svc.UpdateStatus(table.ID, entity.TableOccupied))
}

func TestTableOverrideRefusedWhileOrderOpen(t *testing.T) {
	db := newTestDB(t)
	svc := newTabService(db)
	orderSvc := newOrderService(db)
	dish := seedDish(t, db, "Soup", "45.00")
	table := seedTable(t, db, "T02", entity.TableAvailable, 2, false)

	_, err := orderSvc.Create(&CreateOrderReq{
		OrderType:    entity.OrderDineIn,
		CustomerName: "Ann",
		Phone:        "0812345678",
		TableID:      &table.ID,
		Items:        []OrderItemIn{{DishID: &dish.ID, Qty: 1}},
	})
	require.NoError(t, err)

	// waiter flips it free by hand, then tries to seat a new party
	require.NoError(t, svc.UpdateStatus(table.ID, entity.TableAvailable))
	require.ErrorIs(t, svc.UpdateStatus(table.ID, entity.TableOccupied), ErrTableInUse)
}

func TestMergeAndDisbandTables(t *testing.T) {
	db := newTestDB(t)
	svc := newTabService(db)
	a := seedTable(t, db, "T01", entity.TableAvailable, 2, false)
	b := seedTable(t, db, "T02", entity.TableAvailable, 2, false)
	c := seedTable(t, db, "T03", entity.TableAvailable, 4, false)

	_, err := svc.MergeTables([]uint{a.ID}, 1, "")
	require.ErrorIs(t, err, ErrGroupTooSmall)
	_, err = svc.MergeTables([]uint{a.ID, a.ID}, 1, "")
	require.ErrorIs(t, err, ErrGroupTooSmall)
	_, err = svc.MergeTables([]uint{a.ID, 9999}, 1, "")
	require.ErrorIs(t, err, ErrTableNotFound)

	group, err := svc.MergeTables([]uint{a.ID, b.ID}, 1, "party of 4")
	require.NoError(t, err)

	tables, err := svc.TablesInGroup(group.ID)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	// a grouped table cannot join another group
	_, err = svc.MergeTables([]uint{b.ID, c.ID}, 1, "")
	require.ErrorIs(t, err, ErrTableGrouped)

	require.NoError(t, svc.DisbandGroup(group.ID))
	require.ErrorIs(t, svc.DisbandGroup(group.ID), ErrGroupNotFound)
	_, err = svc.TablesInGroup(group.ID)
	require.ErrorIs(t, err, ErrGroupNotFound)

	// disbanded tables are mergeable again
	_, err = svc.MergeTables([]uint{b.ID, c.ID}, 1, "")
	require.NoError(t, err)
}

func TestListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newTabService(db)
	seedTable(t, db, "T01", entity.TableAvailable, 2, false)
	seedTable(t, db, "T02", entity.TableOccupied, 2, false)
	seedTable(t, db, "T03", entity.TableAvailable, 4, false)

	free, err := svc.ListAvailable()
	require.NoError(t, err)
	require.Len(t, free, 2)

	busy, err := svc.ListByStatus(entity.TableOccupied)
	require.NoError(t, err)
	require.Len(t, busy, 1)

	all, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
}
