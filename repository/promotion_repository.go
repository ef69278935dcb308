package repository

import (
	"strings"
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"gorm.io/gorm"
)

type PromotionRepository struct {
	DB *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

func (r *PromotionRepository) Create(p *entity.Promotion) error {
	p.PromoCode = strings.ToUpper(strings.TrimSpace(p.PromoCode))
	return r.DB.Create(p).Error
}

func (r *PromotionRepository) Get(id uint) (*entity.Promotion, error) {
	var p entity.Promotion
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByCode looks a promotion up case-insensitively. Codes are stored upper.
func (r *PromotionRepository) GetByCode(tx *gorm.DB, code string) (*entity.Promotion, error) {
	var p entity.Promotion
	err := tx.Where("promo_code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Promotion{}).Where("id = ?", id).Updates(updates).Error
}

func (r *PromotionRepository) Delete(id uint) error {
	// usages are append-only history; they stay
	return r.DB.Delete(&entity.Promotion{}, id).Error
}

func (r *PromotionRepository) List() ([]entity.Promotion, error) {
	var out []entity.Promotion
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}

// ListValid: active, today inside the calendar window, limit unset or left.
// Soonest-expiring first so the UI surfaces urgent promotions.
func (r *PromotionRepository) ListValid(today time.Time) ([]entity.Promotion, error) {
	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
	var out []entity.Promotion
	err := r.DB.
		Where("is_active = ?", true).
		Where("start_date <= ? AND end_date >= ?", dayEnd, dayStart).
		Where("usage_limit IS NULL OR usage_limit > 0").
		Order("end_date ASC").
		Find(&out).Error
	return out, err
}

// DecrementLimitGuard consumes one usage slot. Zero affected rows means the
// promotion is unlimited (no-op expected; callers skip it then) or depleted.
func (r *PromotionRepository) DecrementLimitGuard(tx *gorm.DB, promoID uint) (int64, error) {
	res := tx.Model(&entity.Promotion{}).
		Where("id = ? AND usage_limit IS NOT NULL AND usage_limit > 0", promoID).
		Update("usage_limit", gorm.Expr("usage_limit - 1"))
	return res.RowsAffected, res.Error
}

func (r *PromotionRepository) CreateUsage(tx *gorm.DB, u *entity.PromoUsage) error {
	return tx.Create(u).Error
}

func (r *PromotionRepository) CountUsages(promoID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.PromoUsage{}).Where("promotion_id = ?", promoID).Count(&cnt).Error
	return cnt, err
}
