package services

import (
	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"gorm.io/gorm"
)

// Allowed order transitions. Completed and Cancelled are terminal; the
// settlement path in BillingService owns the Completed flip for paid orders.
func transitionSources(to entity.OrderStatus) []entity.OrderStatus {
	switch to {
	case entity.OrderPreparing:
		return []entity.OrderStatus{entity.OrderPending}
	case entity.OrderCompleted:
		return []entity.OrderStatus{entity.OrderPreparing}
	case entity.OrderCancelled:
		return []entity.OrderStatus{entity.OrderPending, entity.OrderPreparing}
	default:
		return nil
	}
}

func (s *OrderService) UpdateStatus(orderID uint, to entity.OrderStatus) error {
	from := transitionSources(to)
	if from == nil {
		return ErrBadTransition
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return ErrOrderNotFound
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderClosed
		}

		// a cancelled dine-in order frees its table; settlement frees it
		// on the paid path
		if to == entity.OrderCancelled && o.OrderType == entity.OrderDineIn && o.TableID != nil {
			if _, err := s.Tables.SetStatusGuard(tx, *o.TableID,
				[]entity.TableStatus{entity.TableOccupied}, entity.TableAvailable); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Events.Publish(Event{Kind: "order_status", OrderID: orderID, TableID: o.TableID, Status: orderStatusName(to)})
	return nil
}

// Kitchen advances line items independently of the order-level status.
func detailTransitionSources(to entity.DetailStatus) []entity.DetailStatus {
	switch to {
	case entity.DetailPreparing:
		return []entity.DetailStatus{entity.DetailPending}
	case entity.DetailReady:
		return []entity.DetailStatus{entity.DetailPreparing}
	case entity.DetailCancelled:
		return []entity.DetailStatus{entity.DetailPending, entity.DetailPreparing}
	default:
		return nil
	}
}

func (s *OrderService) UpdateItemStatus(orderID, detailID uint, to entity.DetailStatus) error {
	from := detailTransitionSources(to)
	if from == nil {
		return ErrBadTransition
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderTx(tx, orderID)
		if err != nil {
			return ErrOrderNotFound
		}
		if o.Status == entity.OrderCancelled {
			return ErrOrderClosed
		}
		d, err := s.Repo.GetDetail(detailID)
		if err != nil || d.OrderID != o.ID {
			return ErrDetailNotFound
		}

		res := tx.Model(&entity.OrderDetail{}).
			Where("id = ? AND status IN ?", detailID, from).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBadTransition
		}

		// a cancelled item drops out of the subtotal
		if to == entity.DetailCancelled && (o.Status == entity.OrderPending || o.Status == entity.OrderPreparing) {
			return s.recomputeTotals(tx, o)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Events.Publish(Event{Kind: "item_status", OrderID: orderID, DetailID: detailID, Status: string(to)})
	return nil
}

func orderStatusName(st entity.OrderStatus) string {
	switch st {
	case entity.OrderPending:
		return "pending"
	case entity.OrderPreparing:
		return "preparing"
	case entity.OrderCompleted:
		return "completed"
	case entity.OrderCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
