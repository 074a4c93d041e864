package domain

import "time"

type PasswordResetToken struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Token      string    `gorm:"type:text;not null;uniqueIndex" json:"token"`
	UserID     string    `gorm:"type:text;not null;index" json:"userId"`
	ExpiryDate time.Time `gorm:"type:timestamp with time zone;not null" json:"expiryDate"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

func (t *PasswordResetToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiryDate)
}

type EmailVerificationToken struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Token      string    `gorm:"type:text;not null;uniqueIndex" json:"token"`
	UserID     string    `gorm:"type:text;not null;index" json:"userId"`
	ExpiryDate time.Time `gorm:"type:timestamp with time zone;not null" json:"expiryDate"`
}

func (EmailVerificationToken) TableName() string {
	return "email_verification_tokens"
}

func (t *EmailVerificationToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiryDate)
}
