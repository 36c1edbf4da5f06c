package models

import (
	"time"
)

// Inquiry verification states. Transitions are one-way: once an inquiry
// leaves pending it never goes back, and verified_at is never cleared.
const (
	VerificationPending     = "pending"
	VerificationVerified    = "verified"
	VerificationUnqualified = "unqualified"
)

type Inquiry struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Name               string     `gorm:"size:100;not null" json:"name"`
	Email              string     `gorm:"size:100" json:"email"`
	Phone              string     `gorm:"size:15" json:"phone"`
	Industry           string     `gorm:"size:50" json:"industry"`
	Requirement        string     `gorm:"type:text" json:"requirement"`
	Budget             string     `gorm:"size:30" json:"budget"`
	Timeline           string     `gorm:"size:30" json:"timeline"`
	Source             string     `gorm:"size:50" json:"source"`
	UTM                string     `gorm:"size:255;column:utm" json:"utm"`
	VerificationStatus string     `gorm:"size:20;default:'pending';index" json:"verification_status"`
	VerificationNotes  string     `gorm:"type:text" json:"verification_notes"`
	VerifiedAt         *time.Time `json:"verified_at"`
	Delivered          bool       `gorm:"default:false" json:"delivered"`
	DeliveredAt        *time.Time `json:"delivered_at"`
	ClientEmail        string     `gorm:"size:100;index" json:"client_email"`
	AIScore            *int       `gorm:"column:ai_score" json:"ai_score"`
	AIReason           string     `gorm:"type:text;column:ai_reason" json:"ai_reason"`
	AIScoredAt         *time.Time `gorm:"column:ai_scored_at" json:"ai_scored_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
