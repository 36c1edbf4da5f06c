package models

import (
	"time"
)

// AdminUser is a back-office principal. The seeder creates one from
// configuration on first boot.
type AdminUser struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
