package services

import (
	"testing"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedStaff(t *testing.T, db *gorm.DB, email string) *entity.Staff {
	t.Helper()
	s := entity.Staff{FullName: "Staff " + email, Email: email, Password: "x", Role: "waiter", IsActive: true}
	require.NoError(t, db.Create(&s).Error)
	return &s
}

func TestClockInAndOut(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(repository.NewStaffRepository(db))
	staff := seedStaff(t, db, "w1@example.com")

	_, err := svc.ClockIn(9999, "")
	require.ErrorIs(t, err, ErrStaffNotFound)
	_, err = svc.ClockOut(staff.ID)
	require.ErrorIs(t, err, ErrNoOpenShift)

	shift, err := svc.ClockIn(staff.ID, "morning")
	require.NoError(t, err)
	require.Nil(t, shift.ClockOut)

	// no second open shift
	_, err = svc.ClockIn(staff.ID, "")
	require.ErrorIs(t, err, ErrShiftOpen)

	closed, err := svc.ClockOut(staff.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.ClockOut)

	// clocked out, a fresh shift may open
	_, err = svc.ClockIn(staff.ID, "evening")
	require.NoError(t, err)

	shifts, err := svc.List(staff.ID, nil)
	require.NoError(t, err)
	require.Len(t, shifts, 2)
}
