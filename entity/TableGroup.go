package entity

import (
	"gorm.io/gorm"
)

// TableGroup represents merged seating: several tables serving one party.
type TableGroup struct {
	gorm.Model
	CreatedBy uint   `json:"createdBy"` // staff id
	Notes     string `json:"notes"`

	Items []TableGroupItem `json:"items"`
}

type TableGroupItem struct {
	gorm.Model
	TableGroupID uint       `json:"tableGroupId"`
	TableGroup   TableGroup `json:"-"`

	// a table sits in at most one active group
	TableID uint  `gorm:"uniqueIndex" json:"tableId"`
	Table   Table `json:"-"`
}

func (TableGroupItem) TableName() string { return "table_group_items" }
