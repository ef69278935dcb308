package repository

import (
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"gorm.io/gorm"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) Create(s *entity.Staff) error { return r.DB.Create(s).Error }

func (r *StaffRepository) FindByID(id uint) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) FindByEmail(email string) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.Where("email = ?", email).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) CountByEmail(email string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Staff{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

func (r *StaffRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Staff{}).Where("id = ?", id).Updates(updates).Error
}

func (r *StaffRepository) List() ([]entity.Staff, error) {
	var out []entity.Staff
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

// ---------------- Shifts ----------------

func (r *StaffRepository) OpenShift(staffID uint) (*entity.Shift, error) {
	var sh entity.Shift
	err := r.DB.Where("staff_id = ? AND clock_out IS NULL", staffID).First(&sh).Error
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

func (r *StaffRepository) CreateShift(sh *entity.Shift) error { return r.DB.Create(sh).Error }

func (r *StaffRepository) CloseShift(shiftID uint, at time.Time) error {
	return r.DB.Model(&entity.Shift{}).Where("id = ?", shiftID).Update("clock_out", at).Error
}

func (r *StaffRepository) ListShifts(staffID uint, day *time.Time) ([]entity.Shift, error) {
	q := r.DB.Model(&entity.Shift{})
	if staffID != 0 {
		q = q.Where("staff_id = ?", staffID)
	}
	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		q = q.Where("clock_in >= ? AND clock_in < ?", start, start.Add(24*time.Hour))
	}
	var out []entity.Shift
	err := q.Order("id DESC").Find(&out).Error
	return out, err
}
