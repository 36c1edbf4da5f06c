package models

import (
	"time"
)

// Client statuses. A client flips to active on first successful payment
// or on manual admin action, never backward.
const (
	ClientPending   = "pending"
	ClientActive    = "active"
	ClientCancelled = "cancelled"
)

type Client struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BusinessName  string    `gorm:"size:150;not null" json:"business_name"`
	ContactPerson string    `gorm:"size:100" json:"contact_person"`
	Email         string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone         string    `gorm:"size:15" json:"phone"`
	Industry      string    `gorm:"size:50" json:"industry"`
	Status        string    `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CustomPlan is a client-specific billing/quota agreement. One row per
// client, enforced by the unique index and written via ON CONFLICT upsert.
type CustomPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientID    uint      `gorm:"uniqueIndex;not null" json:"client_id"`
	Client      Client    `gorm:"foreignKey:ClientID" json:"-"`
	PlanName    string    `gorm:"size:100;not null" json:"plan_name"`
	MonthlyCost float64   `gorm:"type:decimal(10,2);not null" json:"monthly_cost"`
	LeadsQuota  int       `gorm:"not null" json:"leads_quota"`
	Status      string    `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
