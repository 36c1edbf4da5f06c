package models

import (
	"time"
)

// Notification is a read-tracked, fire-and-forget message shown to a
// customer in the dashboard.
type Notification struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"index;not null" json:"customer_id"`
	Type       string    `gorm:"size:30" json:"type"`
	Title      string    `gorm:"size:150" json:"title"`
	Message    string    `gorm:"type:text" json:"message"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	Priority   string    `gorm:"size:10;default:'normal'" json:"priority"`
	CreatedAt  time.Time `json:"created_at"`
}
