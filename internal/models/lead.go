package models

import (
	"time"
)

// Lead statuses in pipeline order. won and lost are terminal.
const (
	LeadNew              = "new"
	LeadContacted        = "contacted"
	LeadQualified        = "qualified"
	LeadMeetingScheduled = "meeting_scheduled"
	LeadWon              = "won"
	LeadLost             = "lost"
)

// Lead is a converted, CRM-style record distinct from Inquiry.
type Lead struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100" json:"email"`
	Phone        string    `gorm:"size:15" json:"phone"`
	Status       string    `gorm:"size:30;default:'new';index" json:"status"`
	QualityScore int       `gorm:"default:0" json:"quality_score"`
	CustomerID   uint      `gorm:"index" json:"customer_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// leadRank orders pipeline stages so status updates can be checked for
// forward-only movement. Terminal stages share the top rank.
var leadRank = map[string]int{
	LeadNew:              0,
	LeadContacted:        1,
	LeadQualified:        2,
	LeadMeetingScheduled: 3,
	LeadWon:              4,
	LeadLost:             4,
}

// ValidLeadStatus reports whether s names a known pipeline stage.
func ValidLeadStatus(s string) bool {
	_, ok := leadRank[s]
	return ok
}

// CanAdvanceLead reports whether a lead may move from one stage to
// another. Re-asserting the current stage is allowed; moving backward or
// out of a terminal stage is not.
func CanAdvanceLead(from, to string) bool {
	fr, ok := leadRank[from]
	if !ok {
		return false
	}
	tr, ok := leadRank[to]
	if !ok {
		return false
	}
	if from == to {
		return true
	}
	if from == LeadWon || from == LeadLost {
		return false
	}
	return tr > fr
}
