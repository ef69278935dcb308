package entity

import (
	"time"

	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCheckedIn ReservationStatus = "checked_in"
)

type Reservation struct {
	gorm.Model
	CustomerName string `gorm:"size:150;not null" json:"customerName"`
	Phone        string `gorm:"size:20;not null" json:"phone"`

	ReservedAt time.Time         `gorm:"index" json:"reservedAt"`
	PartySize  int               `json:"partySize"`
	Status     ReservationStatus `gorm:"size:20;default:pending;index" json:"status"`
	Notes      string            `json:"notes"`

	TableID *uint  `json:"tableId,omitempty"`
	Table   *Table `json:"-"` // preload only when the table name is needed
}
