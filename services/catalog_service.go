package services

import (
	"errors"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"
)

var (
	ErrCatalogName  = errors.New("name is required")
	ErrCatalogPrice = errors.New("price must be positive")
	ErrComboEmpty   = errors.New("combo needs at least one dish")
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// ----- Categories -----

func (s *CatalogService) CreateCategory(c *entity.Category) error {
	if c.CategoryName == "" {
		return ErrCatalogName
	}
	return s.Repo.CreateCategory(c)
}

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *CatalogService) DeleteCategory(id uint) error {
	return s.Repo.DeleteCategory(id)
}

// ----- Dishes -----

func (s *CatalogService) CreateDish(d *entity.Dish) error {
	if d.DishName == "" {
		return ErrCatalogName
	}
	if !d.Price.IsPositive() {
		return ErrCatalogPrice
	}
	return s.Repo.CreateDish(d)
}

func (s *CatalogService) GetDish(id uint) (*entity.Dish, error) {
	d, err := s.Repo.GetDish(id)
	if err != nil {
		return nil, ErrMenuItemNotFound
	}
	return d, nil
}

func (s *CatalogService) UpdateDish(id uint, updates map[string]any) error {
	if _, err := s.Repo.GetDish(id); err != nil {
		return ErrMenuItemNotFound
	}
	return s.Repo.UpdateDish(id, updates)
}

func (s *CatalogService) DeleteDish(id uint) error {
	if _, err := s.Repo.GetDish(id); err != nil {
		return ErrMenuItemNotFound
	}
	return s.Repo.DeleteDish(id)
}

func (s *CatalogService) ListDishes(categoryID uint, activeOnly bool) ([]entity.Dish, error) {
	return s.Repo.ListDishes(categoryID, activeOnly)
}

// ----- Combos -----

func (s *CatalogService) CreateCombo(c *entity.Combo) error {
	if c.ComboName == "" {
		return ErrCatalogName
	}
	if !c.Price.IsPositive() {
		return ErrCatalogPrice
	}
	if len(c.Items) == 0 {
		return ErrComboEmpty
	}
	for _, it := range c.Items {
		if _, err := s.Repo.GetDish(it.DishID); err != nil {
			return ErrMenuItemNotFound
		}
	}
	return s.Repo.CreateCombo(c)
}

func (s *CatalogService) GetCombo(id uint) (*entity.Combo, error) {
	c, err := s.Repo.GetCombo(id)
	if err != nil {
		return nil, ErrMenuItemNotFound
	}
	return c, nil
}

func (s *CatalogService) UpdateCombo(id uint, updates map[string]any) error {
	if _, err := s.Repo.GetCombo(id); err != nil {
		return ErrMenuItemNotFound
	}
	return s.Repo.UpdateCombo(id, updates)
}

func (s *CatalogService) DeleteCombo(id uint) error {
	if _, err := s.Repo.GetCombo(id); err != nil {
		return ErrMenuItemNotFound
	}
	return s.Repo.DeleteCombo(id)
}

func (s *CatalogService) ListCombos(activeOnly bool) ([]entity.Combo, error) {
	return s.Repo.ListCombos(activeOnly)
}
