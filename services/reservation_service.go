package services

import (
	"errors"
	"log"
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"

	"gorm.io/gorm"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationClosed   = errors.New("reservation already cancelled or checked in")
	ErrNameRequired        = errors.New("customer name is required")
	ErrPhoneRequired       = errors.New("phone is required")
	ErrPartyInvalid        = errors.New("party size must be at least 1")
	ErrPastTime            = errors.New("reservation time is in the past")
	ErrOutsideHours        = errors.New("reservation time is outside operating hours (07:30-20:30)")
	ErrTooFarAhead         = errors.New("reservation must be within 7 days")
	ErrNoTableFits         = errors.New("no available table fits the party")
)

// operating window, minutes since midnight
const (
	openingMinute = 7*60 + 30
	closingMinute = 20*60 + 30

	maxAdvance = 7 * 24 * time.Hour
)

type ReservationService struct {
	DB     *gorm.DB
	Repo   *repository.ReservationRepository
	Tables *repository.TableRepository
	Orders *OrderService

	// how long past the reserved time a pending reservation survives the sweep
	Grace time.Duration
	Now   func() time.Time

	stop chan struct{}
}

func NewReservationService(
	db *gorm.DB,
	repo *repository.ReservationRepository,
	tables *repository.TableRepository,
	orders *OrderService,
	grace time.Duration,
) *ReservationService {
	if grace <= 0 {
		grace = 30 * time.Minute
	}
	return &ReservationService{
		DB: db, Repo: repo, Tables: tables, Orders: orders,
		Grace: grace, Now: time.Now,
	}
}

// ----- Create / lifecycle -----

type CreateReservationReq struct {
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	ReservedAt   time.Time `json:"reservedAt"`
	PartySize    int       `json:"partySize"`
	TableID      *uint     `json:"tableId"`
	AutoAssign   bool      `json:"autoAssign"`
	Notes        string    `json:"notes"`
}

func (s *ReservationService) validate(req *CreateReservationReq) error {
	if req.CustomerName == "" {
		return ErrNameRequired
	}
	if req.Phone == "" {
		return ErrPhoneRequired
	}
	if req.PartySize < 1 {
		return ErrPartyInvalid
	}
	now := s.Now()
	if req.ReservedAt.Before(now) {
		return ErrPastTime
	}
	minute := req.ReservedAt.Hour()*60 + req.ReservedAt.Minute()
	if minute < openingMinute || minute > closingMinute {
		return ErrOutsideHours
	}
	if req.ReservedAt.After(now.Add(maxAdvance)) {
		return ErrTooFarAhead
	}
	return nil
}

func (s *ReservationService) Create(req *CreateReservationReq) (*entity.Reservation, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	res := entity.Reservation{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		ReservedAt:   req.ReservedAt,
		PartySize:    req.PartySize,
		Status:       entity.ReservationPending,
		Notes:        req.Notes,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		tableID := req.TableID
		if tableID == nil && req.AutoAssign {
			t, err := s.Tables.FindFirstFit(req.PartySize)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNoTableFits
				}
				return err
			}
			tableID = &t.ID
		}
		if tableID != nil {
			if _, err := s.Tables.Get(*tableID); err != nil {
				return ErrTableNotFound
			}
			affected, err := s.Tables.SetStatusGuard(tx, *tableID,
				[]entity.TableStatus{entity.TableAvailable}, entity.TableReserved)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrTableOccupied
			}
			res.TableID = tableID
		}
		return s.Repo.Create(tx, &res)
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ReservationService) Get(id uint) (*entity.Reservation, error) {
	res, err := s.Repo.Get(id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	return res, nil
}

func (s *ReservationService) List(day *time.Time) ([]entity.Reservation, error) {
	return s.Repo.List(day)
}

func (s *ReservationService) Confirm(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return ErrReservationNotFound
	}
	affected, err := s.Repo.UpdateStatusGuard(s.DB, id,
		[]entity.ReservationStatus{entity.ReservationPending}, entity.ReservationConfirmed)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrReservationClosed
	}
	return nil
}

func (s *ReservationService) Cancel(id uint) error {
	res, err := s.Repo.Get(id)
	if err != nil {
		return ErrReservationNotFound
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, id,
			[]entity.ReservationStatus{entity.ReservationPending, entity.ReservationConfirmed},
			entity.ReservationCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrReservationClosed
		}
		if res.TableID != nil {
			if _, err := s.Tables.SetStatusGuard(tx, *res.TableID,
				[]entity.TableStatus{entity.TableReserved}, entity.TableAvailable); err != nil {
				return err
			}
		}
		return nil
	})
}

// ----- Check-in -----

type CheckInRes struct {
	Reservation *entity.Reservation `json:"reservation"`
	Order       *CreateOrderRes     `json:"order"`
	Table       *entity.Table       `json:"table"`
}

// CheckIn seats the party: reservation → checked_in, a dine-in order is opened
// on the table, and all three come back for the confirmation screen. The whole
// sequence is one transaction; if the order cannot be opened (say a walk-in
// grabbed the table first) the reservation and its hold stay untouched.
func (s *ReservationService) CheckIn(reservationID, tableID uint) (*CheckInRes, error) {
	res, err := s.Repo.Get(reservationID)
	if err != nil {
		return nil, ErrReservationNotFound
	}

	var order *CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, reservationID,
			[]entity.ReservationStatus{entity.ReservationPending, entity.ReservationConfirmed},
			entity.ReservationCheckedIn)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrReservationClosed
		}

		// party moved to a different table than the one held for them
		if res.TableID != nil && *res.TableID != tableID {
			if _, err := s.Tables.SetStatusGuard(tx, *res.TableID,
				[]entity.TableStatus{entity.TableReserved}, entity.TableAvailable); err != nil {
				return err
			}
			if err := s.Repo.SetTable(tx, reservationID, &tableID); err != nil {
				return err
			}
		}

		order, err = s.Orders.CreateFromReservation(tx, &CreateOrderReq{
			OrderType:    entity.OrderDineIn,
			CustomerName: res.CustomerName,
			Phone:        res.Phone,
			TableID:      &tableID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	s.Orders.Events.Publish(Event{Kind: "order_created", OrderID: order.ID, TableID: &tableID})

	table, err := s.Tables.Get(tableID)
	if err != nil {
		return nil, ErrTableNotFound
	}

	res, _ = s.Repo.Get(reservationID)
	return &CheckInRes{Reservation: res, Order: order, Table: table}, nil
}

// ----- Sweep -----

// SweepOnce cancels pending reservations whose time is more than Grace in the
// past and frees any table held for them. Returns how many were cancelled.
func (s *ReservationService) SweepOnce() (int, error) {
	cutoff := s.Now().Add(-s.Grace)
	overdue, err := s.Repo.ListOverduePending(cutoff)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, res := range overdue {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			affected, err := s.Repo.UpdateStatusGuard(tx, res.ID,
				[]entity.ReservationStatus{entity.ReservationPending}, entity.ReservationCancelled)
			if err != nil {
				return err
			}
			if affected == 0 {
				return nil // raced with a confirm/check-in, leave it be
			}
			swept++
			if res.TableID != nil {
				if _, err := s.Tables.SetStatusGuard(tx, *res.TableID,
					[]entity.TableStatus{entity.TableReserved}, entity.TableAvailable); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return swept, err
		}
	}
	return swept, nil
}

// StartSweeper runs the periodic sweep until Stop is called. A failed pass is
// logged and retried at the next tick, never fatal.
func (s *ReservationService) StartSweeper(interval time.Duration) {
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := s.SweepOnce()
				if err != nil {
					log.Printf("reservation sweep failed: %v", err)
					continue
				}
				if n > 0 {
					log.Printf("reservation sweep cancelled %d overdue reservations", n)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *ReservationService) StopSweeper() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}
