package models

import (
	"time"
)

// Payment statuses. Status may only become completed after the gateway
// signature has been verified; completed is terminal.
const (
	PaymentCreated   = "created"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

type Payment struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	RazorpayOrderID   string    `gorm:"size:100;uniqueIndex;not null" json:"razorpay_order_id"`
	RazorpayPaymentID string    `gorm:"size:100" json:"razorpay_payment_id"`
	RazorpaySignature string    `gorm:"size:255" json:"-"`
	Receipt           string    `gorm:"size:36" json:"receipt"`
	Amount            float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency          string    `gorm:"size:10;default:'INR'" json:"currency"`
	Status            string    `gorm:"size:20;default:'created'" json:"status"`
	ClientID          uint      `gorm:"index" json:"client_id"`
	Client            Client    `gorm:"foreignKey:ClientID" json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
