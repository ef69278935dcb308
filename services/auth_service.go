package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/pkg/otp"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"
	"github.com/Dung-L3/SEP490-G20-sub000/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrStaffNotFound      = errors.New("staff not found")
	ErrRoleInvalid        = errors.New("unknown role")
	ErrOTPInvalid         = errors.New("invalid or expired code")
)

var staffRoles = map[string]bool{
	"admin": true, "manager": true, "waiter": true, "chef": true, "receptionist": true,
}

// CodeSender delivers a password-reset code. The real channel (email/SMS) is
// plugged in at wiring time; the default just logs.
type CodeSender interface {
	Send(to, code string) error
}

type LogSender struct{}

func (LogSender) Send(to, code string) error {
	log.Printf("password reset code for %s: %s", to, code)
	return nil
}

type AuthService struct {
	staffRepo *repository.StaffRepository
	codes     *otp.Store
	sender    CodeSender
	jwtSecret string
	jwtTTL    time.Duration
	otpTTL    time.Duration
}

func NewAuthService(repo *repository.StaffRepository, codes *otp.Store, sender CodeSender, secret string, jwtTTL, otpTTL time.Duration) *AuthService {
	if sender == nil {
		sender = LogSender{}
	}
	return &AuthService{
		staffRepo: repo, codes: codes, sender: sender,
		jwtSecret: secret, jwtTTL: jwtTTL, otpTTL: otpTTL,
	}
}

// Register creates a staff account. Admin-only at the route level.
func (s *AuthService) Register(email, password, fullName, role, phone string) (*entity.Staff, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !staffRoles[role] {
		return nil, ErrRoleInvalid
	}

	count, err := s.staffRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := &entity.Staff{
		Email:    email,
		Password: string(hashed),
		FullName: strings.TrimSpace(fullName),
		Role:     role,
		Phone:    strings.TrimSpace(phone),
		IsActive: true,
	}
	if err := s.staffRepo.Create(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.Staff, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	staff, err := s.staffRepo.FindByEmail(email)
	if err != nil || !staff.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(staff.ID, staff.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, staff, nil
}

func (s *AuthService) Profile(staffID uint) (*entity.Staff, error) {
	staff, err := s.staffRepo.FindByID(staffID)
	if err != nil {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

func (s *AuthService) UpdateProfile(staffID uint, updates map[string]any) (*entity.Staff, error) {
	if err := s.staffRepo.Update(staffID, updates); err != nil {
		return nil, err
	}
	return s.Profile(staffID)
}

// ----- Password reset (OTP) -----

func (s *AuthService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.staffRepo.FindByEmail(email); err != nil {
		// don't leak which emails exist
		return nil
	}
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	s.codes.Put(email, code, s.otpTTL)
	return s.sender.Send(email, code)
}

func (s *AuthService) ResetPassword(email, code, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !s.codes.Consume(email, code) {
		return ErrOTPInvalid
	}
	staff, err := s.staffRepo.FindByEmail(email)
	if err != nil {
		return ErrStaffNotFound
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.staffRepo.Update(staff.ID, map[string]any{"password": string(hashed)})
}
