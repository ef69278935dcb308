package repository

import (
	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *CatalogRepository) CreateCategory(c *entity.Category) error { return r.DB.Create(c).Error }

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// ---------------- Dishes ----------------

func (r *CatalogRepository) CreateDish(d *entity.Dish) error { return r.DB.Create(d).Error }

func (r *CatalogRepository) GetDish(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CatalogRepository) UpdateDish(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Dish{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) DeleteDish(id uint) error {
	return r.DB.Delete(&entity.Dish{}, id).Error
}

func (r *CatalogRepository) ListDishes(categoryID uint, activeOnly bool) ([]entity.Dish, error) {
	q := r.DB.Model(&entity.Dish{})
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []entity.Dish
	err := q.Order("id").Find(&out).Error
	return out, err
}

// ---------------- Combos ----------------

func (r *CatalogRepository) CreateCombo(c *entity.Combo) error { return r.DB.Create(c).Error }

func (r *CatalogRepository) GetCombo(id uint) (*entity.Combo, error) {
	var c entity.Combo
	if err := r.DB.Preload("Items").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepository) UpdateCombo(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Combo{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) DeleteCombo(id uint) error {
	if err := r.DB.Where("combo_id = ?", id).Delete(&entity.ComboItem{}).Error; err != nil {
		return err
	}
	return r.DB.Delete(&entity.Combo{}, id).Error
}

func (r *CatalogRepository) ListCombos(activeOnly bool) ([]entity.Combo, error) {
	q := r.DB.Model(&entity.Combo{}).Preload("Items")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []entity.Combo
	err := q.Order("id").Find(&out).Error
	return out, err
}

// DishName returns the display name, or "" when the dish row is gone.
func (r *CatalogRepository) DishName(id uint) string {
	var row struct{ DishName string }
	if err := r.DB.Model(&entity.Dish{}).Select("dish_name").Where("id = ?", id).
		Limit(1).Scan(&row).Error; err != nil {
		return ""
	}
	return row.DishName
}

func (r *CatalogRepository) ComboName(id uint) string {
	var row struct{ ComboName string }
	if err := r.DB.Model(&entity.Combo{}).Select("combo_name").Where("id = ?", id).
		Limit(1).Scan(&row).Error; err != nil {
		return ""
	}
	return row.ComboName
}
