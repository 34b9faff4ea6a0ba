package models

import "time"

// User is an authentication principal. Emails are stored lowercased and are
// unique. ResetToken/ResetExpires hold an outstanding password-reset token;
// both are cleared when the token is consumed.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FullName     string     `gorm:"size:255" json:"full_name"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"size:20;default:'owner'" json:"role"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	ResetToken   *string    `gorm:"size:64;index" json:"-"`
	ResetExpires *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}
