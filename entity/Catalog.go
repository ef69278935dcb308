package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	CategoryName string `gorm:"size:100;uniqueIndex;not null" json:"categoryName"`

	Dishes []Dish `json:"-"`
}

type Dish struct {
	gorm.Model
	DishName string          `gorm:"size:150;not null" json:"dishName"`
	Detail   string          `json:"detail"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Picture  string          `json:"picture"`
	IsActive bool            `gorm:"default:true" json:"isActive"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for menu detail

	OrderDetails []OrderDetail `json:"-"`
	ComboItems   []ComboItem   `json:"-"`
}

type Combo struct {
	gorm.Model
	ComboName string          `gorm:"size:150;not null" json:"comboName"`
	Detail    string          `json:"detail"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Picture   string          `json:"picture"`
	IsActive  bool            `gorm:"default:true" json:"isActive"`

	Items        []ComboItem   `json:"items"`
	OrderDetails []OrderDetail `json:"-"`
}

type ComboItem struct {
	gorm.Model
	ComboID uint  `json:"comboId"`
	Combo   Combo `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`

	Qty int `json:"qty"`
}
