package repository

import (
	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Get(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) GetByQRToken(token string) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("qr_token = ?", token).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) ListByStatus(status entity.TableStatus) ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Where("status = ?", status).Order("id").Find(&out).Error
	return out, err
}

func (r *TableRepository) ListByArea(areaID uint) ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Where("area_id = ?", areaID).Order("id").Find(&out).Error
	return out, err
}

func (r *TableRepository) ListAll() ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

// ---------------- Status transitions (guarded) ----------------

// SetStatusGuard flips status only when the table is currently in one of `from`.
// The caller decides what zero affected rows means.
func (r *TableRepository) SetStatusGuard(tx *gorm.DB, tableID uint, from []entity.TableStatus, to entity.TableStatus) (int64, error) {
	res := tx.Model(&entity.Table{}).
		Where("id = ? AND status IN ?", tableID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *TableRepository) SetStatus(tableID uint, to entity.TableStatus) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", tableID).Update("status", to).Error
}

// HasActiveOrder reports whether any non-terminal order references the table.
func (r *TableRepository) HasActiveOrder(tableID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("table_id = ? AND status IN ?", tableID, []entity.OrderStatus{entity.OrderPending, entity.OrderPreparing}).
		Count(&cnt).Error
	return cnt > 0, err
}

// FindFirstFit picks the allocation candidate for a reservation: smallest
// available table that seats the party, non-window first, lowest id wins ties.
func (r *TableRepository) FindFirstFit(partySize int) (*entity.Table, error) {
	var t entity.Table
	err := r.DB.
		Where("status = ? AND capacity >= ?", entity.TableAvailable, partySize).
		Where("id NOT IN (?)", r.DB.Model(&entity.TableGroupItem{}).Select("table_id")).
		Order("is_window ASC, capacity ASC, id ASC").
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ---------------- Groups ----------------

func (r *TableRepository) CreateGroup(tx *gorm.DB, g *entity.TableGroup) error {
	return tx.Create(g).Error
}

func (r *TableRepository) AddGroupItem(tx *gorm.DB, item *entity.TableGroupItem) error {
	return tx.Create(item).Error
}

func (r *TableRepository) GetGroup(id uint) (*entity.TableGroup, error) {
	var g entity.TableGroup
	if err := r.DB.Preload("Items").First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *TableRepository) IsGrouped(tableID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.TableGroupItem{}).Where("table_id = ?", tableID).Count(&cnt).Error
	return cnt > 0, err
}

// DeleteGroup removes membership rows and the group itself. Hard delete so the
// unique index on table_id frees up for the next merge.
func (r *TableRepository) DeleteGroup(tx *gorm.DB, groupID uint) error {
	if err := tx.Unscoped().Where("table_group_id = ?", groupID).Delete(&entity.TableGroupItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.TableGroup{}, groupID).Error
}

func (r *TableRepository) ListGroupTables(groupID uint) ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.
		Joins("JOIN table_group_items tgi ON tgi.table_id = tables.id").
		Where("tgi.table_group_id = ? AND tgi.deleted_at IS NULL", groupID).
		Order("tables.id").
		Find(&out).Error
	return out, err
}
