package repository

import (
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(tx *gorm.DB, res *entity.Reservation) error {
	return tx.Create(res).Error
}

func (r *ReservationRepository) Get(id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	if err := r.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) List(day *time.Time) ([]entity.Reservation, error) {
	q := r.DB.Model(&entity.Reservation{})
	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		q = q.Where("reserved_at >= ? AND reserved_at < ?", start, start.Add(24*time.Hour))
	}
	var out []entity.Reservation
	err := q.Order("reserved_at").Find(&out).Error
	return out, err
}

// UpdateStatusGuard flips reservation status from one of `from`.
func (r *ReservationRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from []entity.ReservationStatus, to entity.ReservationStatus) (int64, error) {
	res := tx.Model(&entity.Reservation{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *ReservationRepository) SetTable(tx *gorm.DB, id uint, tableID *uint) error {
	return tx.Model(&entity.Reservation{}).Where("id = ?", id).Update("table_id", tableID).Error
}

// ListOverduePending returns pending reservations whose time passed the cutoff.
// Candidate set for the sweep.
func (r *ReservationRepository) ListOverduePending(cutoff time.Time) ([]entity.Reservation, error) {
	var out []entity.Reservation
	err := r.DB.
		Where("status = ? AND reserved_at < ?", entity.ReservationPending, cutoff).
		Find(&out).Error
	return out, err
}
