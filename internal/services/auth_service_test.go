package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/coachdesk/coachdesk-backend/internal/config"
	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/coachdesk/coachdesk-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, mutate func(*config.Config)) (*AuthService, *gorm.DB, *config.Config) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		EnableRegister: true,
		AppURL:         "http://localhost:5173",
	}
	if mutate != nil {
		mutate(cfg)
	}
	return NewAuthService(db, cfg, NewMailer(cfg)), db, cfg
}

func TestRegisterDisabled(t *testing.T) {
	svc, _, _ := newAuthService(t, func(c *config.Config) { c.EnableRegister = false })

	_, err := svc.Register(&dto.RegisterRequest{Email: "coach@example.com", Password: "longenough"})
	require.ErrorIs(t, err, ErrRegistrationDisabled)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAuthService(t, nil)

	_, err := svc.Register(&dto.RegisterRequest{Email: "not-an-email", Password: "longenough"})
	require.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Register(&dto.RegisterRequest{Email: "coach@example.com", Password: "short"})
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterAllowList(t *testing.T) {
	svc, _, _ := newAuthService(t, func(c *config.Config) {
		c.AllowedEmails = []string{"coach@example.com"}
	})

	_, err := svc.Register(&dto.RegisterRequest{Email: "stranger@example.com", Password: "longenough"})
	require.ErrorIs(t, err, ErrEmailNotAllowed)

	user, err := svc.Register(&dto.RegisterRequest{Email: "Coach@Example.com", Password: "longenough"})
	require.NoError(t, err)
	assert.Equal(t, "coach@example.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService(t, nil)

	_, err := svc.Register(&dto.RegisterRequest{Email: "coach@example.com", Password: "longenough"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "COACH@example.com", Password: "different1"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginAllowListCheckedBeforeLookup(t *testing.T) {
	svc, _, _ := newAuthService(t, func(c *config.Config) {
		c.AllowedEmails = []string{"coach@example.com"}
	})

	// The email does not exist either, but a blocked caller only ever sees
	// the allow-list rejection.
	_, _, err := svc.Login(&dto.LoginRequest{Email: "stranger@example.com", Password: "whatever1"})
	require.ErrorIs(t, err, ErrEmailNotAllowed)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthService(t, nil)

	_, err := svc.Register(&dto.RegisterRequest{Email: "coach@example.com", Password: "longenough"})
	require.NoError(t, err)

	_, _, err = svc.Login(&dto.LoginRequest{Email: "coach@example.com", Password: "wrongpass1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "whatever1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _, cfg := newAuthService(t, nil)

	registered, err := svc.Register(&dto.RegisterRequest{Email: "coach@example.com", Password: "longenough"})
	require.NoError(t, err)

	user, token, err := svc.Login(&dto.LoginRequest{Email: " Coach@Example.com ", Password: "longenough"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatUint(uint64(user.ID), 10), sub)
	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(cfg.TokenTTL), exp.Time, time.Minute)
}

func TestGetUserNotFound(t *testing.T) {
	svc, _, _ := newAuthService(t, nil)

	_, err := svc.GetUser(123)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRequestResetUnknownEmailIsSilent(t *testing.T) {
	svc, db, _ := newAuthService(t, nil)

	require.NoError(t, svc.RequestReset("nobody@example.com"))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResetFlowTokenIsSingleUse(t *testing.T) {
	svc, db, _ := newAuthService(t, nil)

	_, err := svc.Register(&dto.RegisterRequest{Email: "coach@example.com", Password: "oldpassword"})
	require.NoError(t, err)
	require.NoError(t, svc.RequestReset("coach@example.com"))

	var user models.User
	require.NoError(t, db.Where("email = ?", "coach@example.com").First(&user).Error)
	require.NotNil(t, user.ResetToken)
	require.NotNil(t, user.ResetExpires)
	token := *user.ResetToken

	err = svc.ConfirmReset(&dto.ResetConfirmRequest{Token: token, NewPassword: "short"})
	require.ErrorIs(t, err, ErrWeakPassword)

	require.NoError(t, svc.ConfirmReset(&dto.ResetConfirmRequest{Token: token, NewPassword: "newpassword"}))

	_, _, err = svc.Login(&dto.LoginRequest{Email: "coach@example.com", Password: "oldpassword"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(&dto.LoginRequest{Email: "coach@example.com", Password: "newpassword"})
	require.NoError(t, err)

	// Consumed tokens are indistinguishable from unknown ones.
	err = svc.ConfirmReset(&dto.ResetConfirmRequest{Token: token, NewPassword: "anotherpass"})
	require.ErrorIs(t, err, ErrInvalidResetToken)

	// Re-read into a fresh struct: GORM leaves stale pointer fields in place
	// when scanning NULL columns into a reused destination.
	var after models.User
	require.NoError(t, db.Where("email = ?", "coach@example.com").First(&after).Error)
	assert.Nil(t, after.ResetToken)
	assert.Nil(t, after.ResetExpires)
}

func TestResetExpiredToken(t *testing.T) {
	svc, db, _ := newAuthService(t, nil)

	_, err := svc.Register(&dto.RegisterRequest{Email: "coach@example.com", Password: "oldpassword"})
	require.NoError(t, err)
	require.NoError(t, svc.RequestReset("coach@example.com"))

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "coach@example.com").
		Update("reset_expires", expired).Error)

	var user models.User
	require.NoError(t, db.Where("email = ?", "coach@example.com").First(&user).Error)

	err = svc.ConfirmReset(&dto.ResetConfirmRequest{Token: *user.ResetToken, NewPassword: "newpassword"})
	require.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestConfirmResetEmptyToken(t *testing.T) {
	svc, _, _ := newAuthService(t, nil)

	err := svc.ConfirmReset(&dto.ResetConfirmRequest{Token: "", NewPassword: "newpassword"})
	require.ErrorIs(t, err, ErrInvalidResetToken)
}
