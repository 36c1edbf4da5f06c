package models

import (
	"time"
)

// Submission is a completed onboarding questionnaire. Immutable after
// intake except for Status, which admin review may touch.
type Submission struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ReferenceCode    string    `gorm:"size:36;uniqueIndex;not null" json:"reference_code"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	Email            string    `gorm:"size:100" json:"email"`
	Phone            string    `gorm:"size:15" json:"phone"`
	Industry         string    `gorm:"size:50;not null" json:"industry"`
	City             string    `gorm:"size:50;not null" json:"city"`
	AvgCustomerValue string    `gorm:"size:20" json:"avg_customer_value"`
	CurrentInquiries string    `gorm:"size:20" json:"current_inquiries"`
	DesiredInquiries string    `gorm:"size:20" json:"desired_inquiries"`
	BudgetRange      string    `gorm:"size:20" json:"budget_range"`
	HasSalesTeam     string    `gorm:"size:10" json:"has_sales_team"`
	Score            int       `gorm:"not null" json:"score"`
	ScoreVersion     string    `gorm:"size:10;not null" json:"score_version"`
	RawAnswers       string    `gorm:"type:text" json:"raw_answers"`
	Status           string    `gorm:"size:20;default:'new'" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// CallRecord is the follow-up call slot booked for a submission. At most
// one row per submission; writes go through an ON CONFLICT upsert.
type CallRecord struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SubmissionID uint       `gorm:"uniqueIndex;not null" json:"submission_id"`
	Submission   Submission `gorm:"foreignKey:SubmissionID" json:"-"`
	ScheduledAt  *time.Time `json:"scheduled_at"`
	Status       string     `gorm:"size:20;default:'pending'" json:"status"`
	Notes        string     `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// WaitlistEntry holds a marketing-site waitlist signup. Requires a name
// plus at least one contact method.
type WaitlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100" json:"email"`
	Phone     string    `gorm:"size:15" json:"phone"`
	Source    string    `gorm:"size:50" json:"source"`
	Synced    bool      `gorm:"default:false" json:"synced"`
	CreatedAt time.Time `json:"created_at"`
}
