package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coachdesk/coachdesk-backend/internal/config"
	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/coachdesk/coachdesk-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrRegistrationDisabled = errors.New("registration is disabled")
	ErrEmailNotAllowed      = errors.New("this account is not allowed to sign in")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidEmail         = errors.New("a valid email is required")
	ErrWeakPassword         = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidResetToken    = errors.New("invalid or expired token")
)

const resetTokenTTL = 30 * time.Minute

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer *Mailer
}

func NewAuthService(db *gorm.DB, cfg *config.Config, mailer *Mailer) *AuthService {
	return &AuthService{db: db, cfg: cfg, mailer: mailer}
}

// Register creates a user when the feature flag allows it. The allow-list
// still applies, so enabling registration does not open the door to arbitrary
// emails.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if !s.cfg.EnableRegister {
		return nil, ErrRegistrationDisabled
	}

	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrWeakPassword
	}
	if !s.cfg.EmailAllowed(email) {
		return nil, ErrEmailNotAllowed
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         "owner",
		IsActive:     true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Login verifies credentials and returns the user plus a signed session
// token. The allow-list is checked before touching the user table so a
// rejected email learns nothing about whether the account exists.
func (s *AuthService) Login(req *dto.LoginRequest) (*models.User, string, error) {
	email := normalizeEmail(req.Email)
	if !s.cfg.EmailAllowed(email) {
		return nil, "", ErrEmailNotAllowed
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// GenerateToken signs an HS256 session token carrying the user id.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(user.ID), 10),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// RequestReset never reports whether the email exists. When the account is
// eligible it stores a single-use token and mails the reset link.
func (s *AuthService) RequestReset(email string) error {
	email = normalizeEmail(email)
	if !s.cfg.EmailAllowed(email) {
		return nil
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	expires := time.Now().Add(resetTokenTTL)
	err := s.db.Model(&user).Updates(map[string]interface{}{
		"reset_token":   token,
		"reset_expires": expires,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetURL := s.cfg.AppURL + "/reset-password?token=" + token
	s.mailer.SendReset(user.Email, resetURL)
	return nil
}

// ConfirmReset consumes a reset token. The token fields are cleared on
// success, so a second confirm with the same token fails like an unknown one.
func (s *AuthService) ConfirmReset(req *dto.ResetConfirmRequest) error {
	if req.Token == "" {
		return ErrInvalidResetToken
	}
	if len(req.NewPassword) < 8 {
		return ErrWeakPassword
	}

	var user models.User
	if err := s.db.Where("reset_token = ?", req.Token).First(&user).Error; err != nil {
		return ErrInvalidResetToken
	}
	if user.ResetExpires == nil || user.ResetExpires.Before(time.Now()) {
		return ErrInvalidResetToken
	}
	if !s.cfg.EmailAllowed(user.Email) {
		return ErrEmailNotAllowed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.db.Model(&user).Updates(map[string]interface{}{
		"password_hash": string(hash),
		"reset_token":   nil,
		"reset_expires": nil,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
