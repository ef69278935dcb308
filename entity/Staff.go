package entity

import (
	"time"

	"gorm.io/gorm"
)

type Staff struct {
	gorm.Model
	FullName string `gorm:"size:150;not null" json:"fullName"`
	Email    string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Phone    string `gorm:"size:20" json:"phone"`
	// admin | manager | waiter | chef | receptionist
	Role     string `gorm:"size:30;not null" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	Shifts   []Shift   `json:"-"`
	Invoices []Invoice `json:"-"`
}

type Shift struct {
	gorm.Model
	StaffID uint  `json:"staffId"`
	Staff   Staff `json:"-"`

	ClockIn  time.Time  `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut,omitempty"`
	Notes    string     `json:"notes"`
}
