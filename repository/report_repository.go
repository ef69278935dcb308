package repository

import (
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// Purchase-history projections. Read-only, scanned into plain rows; report
// money goes through REAL casts, the core money path never does.

type RevenueSummary struct {
	Orders   int64   `json:"orders"`
	Gross    float64 `json:"gross"`
	Discount float64 `json:"discount"`
	Net      float64 `json:"net"`
}

func (r *ReportRepository) Revenue(from, to time.Time) (*RevenueSummary, error) {
	var out RevenueSummary
	err := r.DB.Model(&entity.Order{}).
		Select(`COUNT(*) AS orders,
			COALESCE(SUM(CAST(subtotal AS REAL)), 0) AS gross,
			COALESCE(SUM(CAST(discount AS REAL)), 0) AS discount,
			COALESCE(SUM(CAST(final_total AS REAL)), 0) AS net`).
		Where("status = ? AND created_at >= ? AND created_at < ?", entity.OrderCompleted, from, to).
		Scan(&out).Error
	return &out, err
}

type DishSales struct {
	DishID   uint    `json:"dishId"`
	DishName string  `json:"dishName"`
	Qty      int64   `json:"qty"`
	Revenue  float64 `json:"revenue"`
}

func (r *ReportRepository) TopDishes(from, to time.Time, limit int) ([]DishSales, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var out []DishSales
	err := r.DB.Table("order_details AS od").
		Select(`od.dish_id, d.dish_name,
			SUM(od.qty) AS qty,
			SUM(CAST(od.unit_price AS REAL) * od.qty) AS revenue`).
		Joins("JOIN orders o ON o.id = od.order_id").
		Joins("JOIN dishes d ON d.id = od.dish_id").
		Where("o.status = ? AND od.status <> ? AND od.dish_id IS NOT NULL", entity.OrderCompleted, entity.DetailCancelled).
		Where("o.created_at >= ? AND o.created_at < ?", from, to).
		Group("od.dish_id, d.dish_name").
		Order("qty DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

type TableTurnover struct {
	TableID   uint    `json:"tableId"`
	TableName string  `json:"tableName"`
	Orders    int64   `json:"orders"`
	Net       float64 `json:"net"`
}

func (r *ReportRepository) Turnover(from, to time.Time) ([]TableTurnover, error) {
	var out []TableTurnover
	err := r.DB.Table("orders AS o").
		Select(`o.table_id, t.table_name, COUNT(*) AS orders,
			COALESCE(SUM(CAST(o.final_total AS REAL)), 0) AS net`).
		Joins("JOIN tables t ON t.id = o.table_id").
		Where("o.status = ? AND o.table_id IS NOT NULL", entity.OrderCompleted).
		Where("o.created_at >= ? AND o.created_at < ?", from, to).
		Group("o.table_id, t.table_name").
		Order("net DESC").
		Scan(&out).Error
	return out, err
}
