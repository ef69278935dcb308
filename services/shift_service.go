package services

import (
	"errors"
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"

	"gorm.io/gorm"
)

var (
	ErrShiftOpen   = errors.New("staff already has an open shift")
	ErrNoOpenShift = errors.New("no open shift to clock out of")
)

type ShiftService struct {
	Repo *repository.StaffRepository
}

func NewShiftService(repo *repository.StaffRepository) *ShiftService {
	return &ShiftService{Repo: repo}
}

func (s *ShiftService) ClockIn(staffID uint, notes string) (*entity.Shift, error) {
	if _, err := s.Repo.FindByID(staffID); err != nil {
		return nil, ErrStaffNotFound
	}
	if _, err := s.Repo.OpenShift(staffID); err == nil {
		return nil, ErrShiftOpen
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sh := &entity.Shift{StaffID: staffID, ClockIn: time.Now(), Notes: notes}
	if err := s.Repo.CreateShift(sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *ShiftService) ClockOut(staffID uint) (*entity.Shift, error) {
	sh, err := s.Repo.OpenShift(staffID)
	if err != nil {
		return nil, ErrNoOpenShift
	}
	now := time.Now()
	if err := s.Repo.CloseShift(sh.ID, now); err != nil {
		return nil, err
	}
	sh.ClockOut = &now
	return sh, nil
}

func (s *ShiftService) List(staffID uint, day *time.Time) ([]entity.Shift, error) {
	return s.Repo.ListShifts(staffID, day)
}
