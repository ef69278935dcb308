package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Reason-coded sentinels: the UI message differs per rejection cause, so the
// distinction must survive to the controller.
var (
	ErrPromoNotFound   = errors.New("promotion not found")
	ErrPromoInactive   = errors.New("promotion is inactive")
	ErrPromoExpired    = errors.New("promotion is outside its validity window")
	ErrPromoDepleted   = errors.New("promotion usage limit reached")
	ErrPromoNoEffect   = errors.New("promotion has no effect on this order")
	ErrOrderDiscounted = errors.New("order already has a discount")
	ErrPromoInvalid    = errors.New("promotion needs a code and a positive discount")
)

type PromotionService struct {
	DB     *gorm.DB
	Repo   *repository.PromotionRepository
	Orders *repository.OrderRepository

	// injectable clock so validity-window tests don't depend on wall time
	Now func() time.Time
}

func NewPromotionService(db *gorm.DB, repo *repository.PromotionRepository, orders *repository.OrderRepository) *PromotionService {
	return &PromotionService{DB: db, Repo: repo, Orders: orders, Now: time.Now}
}

// ----- Admin CRUD -----

func (s *PromotionService) Create(p *entity.Promotion) error {
	if p.PromoCode == "" || (!p.DiscountPercent.IsPositive() && !p.DiscountAmount.IsPositive()) {
		return ErrPromoInvalid
	}
	return s.Repo.Create(p)
}

func (s *PromotionService) Get(id uint) (*entity.Promotion, error) {
	p, err := s.Repo.Get(id)
	if err != nil {
		return nil, ErrPromoNotFound
	}
	return p, nil
}

func (s *PromotionService) Update(id uint, updates map[string]any) error {
	if _, err := s.Repo.Get(id); err != nil {
		return ErrPromoNotFound
	}
	// codes are stored upper; a patched code must stay reachable by GetByCode
	if code, ok := updates["promo_code"].(string); ok {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			return ErrPromoInvalid
		}
		updates["promo_code"] = code
	}
	return s.Repo.Update(id, updates)
}

func (s *PromotionService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return ErrPromoNotFound
	}
	return s.Repo.Delete(id)
}

func (s *PromotionService) List() ([]entity.Promotion, error) {
	return s.Repo.List()
}

func (s *PromotionService) ListValid() ([]entity.Promotion, error) {
	return s.Repo.ListValid(s.Now())
}

// ----- Redemption -----

type ApplyResult struct {
	OrderID    uint            `json:"orderId"`
	PromoCode  string          `json:"promoCode"`
	Discount   decimal.Decimal `json:"discount"`
	FinalTotal decimal.Decimal `json:"finalTotal"`
}

// inclusive calendar-date window check
func withinWindow(now, start, end time.Time) bool {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	return !day.Before(startDay) && !day.After(endDay)
}

// Apply redeems a promotion against an order. Everything from validation to
// the usage record is one transaction; the conditional decrement and the
// promotion_id IS NULL guard keep concurrent redemptions honest, so a
// promotion with usageLimit=N can never produce more than N usage rows.
func (s *PromotionService) Apply(orderID uint, code string) (*ApplyResult, error) {
	var out ApplyResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Orders.GetOrderTx(tx, orderID)
		if err != nil {
			return ErrOrderNotFound
		}
		if order.Status != entity.OrderPending && order.Status != entity.OrderPreparing {
			return ErrOrderClosed
		}
		if order.PromotionID != nil || order.Discount.IsPositive() {
			return ErrOrderDiscounted
		}

		promo, err := s.Repo.GetByCode(tx, code)
		if err != nil {
			return ErrPromoNotFound
		}
		if !promo.IsActive {
			return ErrPromoInactive
		}
		if !withinWindow(s.Now(), promo.StartDate, promo.EndDate) {
			return ErrPromoExpired
		}
		if promo.UsageLimit != nil && *promo.UsageLimit <= 0 {
			return ErrPromoDepleted
		}

		// percent wins over fixed amount; round half-up to 2 decimals
		var discount decimal.Decimal
		if promo.DiscountPercent.IsPositive() {
			discount = order.Subtotal.Mul(promo.DiscountPercent).
				Div(decimal.NewFromInt(100)).Round(2)
		} else {
			discount = promo.DiscountAmount.Round(2)
		}
		if discount.GreaterThan(order.Subtotal) {
			discount = order.Subtotal
		}
		if !discount.IsPositive() {
			return ErrPromoNoEffect
		}

		if promo.UsageLimit != nil {
			affected, err := s.Repo.DecrementLimitGuard(tx, promo.ID)
			if err != nil {
				return err
			}
			if affected == 0 {
				// lost the race for the last slot
				return ErrPromoDepleted
			}
		}

		final := order.Subtotal.Sub(discount)
		affected, err := s.Orders.ApplyPromotionGuard(tx, order.ID, promo.ID, discount, final)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderDiscounted
		}

		usage := entity.PromoUsage{PromotionID: promo.ID, UsedAt: s.Now()}
		if order.Phone != "" {
			phone := order.Phone
			usage.Phone = &phone
		}
		if err := s.Repo.CreateUsage(tx, &usage); err != nil {
			return err
		}

		out = ApplyResult{
			OrderID:    order.ID,
			PromoCode:  promo.PromoCode,
			Discount:   discount,
			FinalTotal: final,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
