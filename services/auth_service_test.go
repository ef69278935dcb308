package services

import (
	"testing"
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/pkg/otp"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type captureSender struct {
	to, code string
}

func (c *captureSender) Send(to, code string) error {
	c.to, c.code = to, code
	return nil
}

func newAuthFixture(db *gorm.DB) (*AuthService, *captureSender) {
	sender := &captureSender{}
	svc := NewAuthService(repository.NewStaffRepository(db), otp.NewStore(), sender,
		"test-secret", time.Hour, 5*time.Minute)
	return svc, sender
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthFixture(db)

	staff, err := svc.Register("Ann@Example.com", "s3cret-pass", "Ann W", "waiter", "0812345678")
	require.NoError(t, err)
	require.Equal(t, "ann@example.com", staff.Email)
	require.NotEqual(t, "s3cret-pass", staff.Password) // stored hashed

	_, err = svc.Register("ann@example.com", "other-pass", "Imposter", "waiter", "")
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Register("new@example.com", "pass", "X", "astronaut", "")
	require.ErrorIs(t, err, ErrRoleInvalid)

	token, got, err := svc.Login("ann@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, staff.ID, got.ID)

	_, _, err = svc.Login("ann@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestInactiveStaffCannotLogin(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthFixture(db)

	staff, err := svc.Register("bob@example.com", "s3cret-pass", "Bob", "chef", "")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(staff.ID, map[string]any{"is_active": false})
	require.NoError(t, err)

	_, _, err = svc.Login("bob@example.com", "s3cret-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	db := newTestDB(t)
	svc, sender := newAuthFixture(db)

	_, err := svc.Register("ann@example.com", "old-pass", "Ann", "waiter", "")
	require.NoError(t, err)

	// unknown email must not leak existence
	require.NoError(t, svc.RequestPasswordReset("ghost@example.com"))
	require.Empty(t, sender.code)

	require.NoError(t, svc.RequestPasswordReset("ann@example.com"))
	require.Equal(t, "ann@example.com", sender.to)
	require.Len(t, sender.code, 6)

	require.ErrorIs(t, svc.ResetPassword("ann@example.com", "WRONG1", "new-pass"), ErrOTPInvalid)

	require.NoError(t, svc.ResetPassword("ann@example.com", sender.code, "new-pass"))
	// the code is consumed
	require.ErrorIs(t, svc.ResetPassword("ann@example.com", sender.code, "again"), ErrOTPInvalid)

	_, _, err = svc.Login("ann@example.com", "old-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("ann@example.com", "new-pass")
	require.NoError(t, err)
}
