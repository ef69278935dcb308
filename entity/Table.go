package entity

import (
	"gorm.io/gorm"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
	TableOccupied  TableStatus = "occupied"
)

type Area struct {
	gorm.Model
	AreaName string `gorm:"size:100;uniqueIndex;not null" json:"areaName"`

	Tables []Table `json:"-"`
}

type Table struct {
	gorm.Model
	TableName string      `gorm:"size:100;not null" json:"tableName"`
	Status    TableStatus `gorm:"size:20;default:available;index" json:"status"`
	Capacity  int         `json:"capacity"`
	IsWindow  bool        `json:"isWindow"`
	// token printed into the table's QR code, minted once at creation
	QRToken string `gorm:"size:64;uniqueIndex" json:"qrToken"`
	Notes   string `json:"notes"`

	AreaID uint `json:"areaId"`
	Area   Area `json:"-"` // preload only when the area name is needed

	Orders       []Order          `json:"-"`
	Reservations []Reservation    `json:"-"`
	Memberships  []TableGroupItem `json:"-"`
}
