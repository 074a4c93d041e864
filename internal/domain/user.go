package domain

import (
	"strings"
	"time"
)

type User struct {
	ID              string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	FirstName       string        `gorm:"type:text" json:"firstName"`
	LastName        string        `gorm:"type:text" json:"lastName"`
	Email           string        `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash    string        `gorm:"column:password;type:text" json:"-"`
	Role            Role          `gorm:"type:text" json:"role"`
	BusinessID      string        `gorm:"column:business_id;type:text;index" json:"businessID"`
	PhoneNumber     string        `gorm:"type:text" json:"phoneNumber"`
	ProfileStatus   ProfileStatus `gorm:"type:text;not null;default:'ACTIVE'" json:"profileStatus"`
	EmailVerified   bool          `gorm:"not null;default:false" json:"emailVerified"`
	ProfilePicture  string        `gorm:"type:text" json:"profilePicture"`
	Provider        AuthProvider  `gorm:"type:text;not null;default:'EMAIL'" json:"provider"`
	Notifications   string        `gorm:"type:text" json:"notifications"`
	CreationDateUTC time.Time     `gorm:"column:creation_date_utc;type:timestamp with time zone" json:"creationDateUtc"`
}

func (User) TableName() string {
	return "users"
}

// HasTenant reports whether the user is bound to a business
func (u *User) HasTenant() bool {
	return u.BusinessID != ""
}

// HasPassword is false for accounts created through a federated provider
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// CanonicalEmail is the form emails are stored and looked up in
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
