package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"leadgen-app/config"
	"leadgen-app/internal/models"
	"leadgen-app/internal/service"
	"leadgen-app/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// onboardingRequired is the field set the funnel form must submit. The
// client still sends its locally computed score but the server recomputes
// and persists its own value.
var onboardingRequired = []string{
	"name", "industry", "city", "avgCustomerValue", "currentInquiries",
	"desiredInquiries", "budgetRange", "hasSalesTeam", "score",
}

type OnboardingHandler struct {
	Airtable *service.AirtableClient
	Notify   *service.Dispatcher
}

func (h *OnboardingHandler) Submit(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON payload"})
		return
	}

	result := service.ValidateRequired(payload, onboardingRequired)
	if !result.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": service.MissingFieldsError(result.MissingFields)})
		return
	}

	email := str(payload, "email")
	phone := str(payload, "phone")

	score := service.ComputeScore(service.ScoringInput{
		Industry:         str(payload, "industry"),
		City:             str(payload, "city"),
		AvgCustomerValue: str(payload, "avgCustomerValue"),
		CurrentInquiries: str(payload, "currentInquiries"),
		DesiredInquiries: str(payload, "desiredInquiries"),
		BudgetRange:      str(payload, "budgetRange"),
		HasSalesTeam:     str(payload, "hasSalesTeam"),
	})

	rawAnswers, err := json.Marshal(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to encode answers"})
		return
	}

	submission := models.Submission{
		ReferenceCode:    uuid.New().String(),
		Name:             str(payload, "name"),
		Email:            email,
		Phone:            phone,
		Industry:         str(payload, "industry"),
		City:             str(payload, "city"),
		AvgCustomerValue: str(payload, "avgCustomerValue"),
		CurrentInquiries: str(payload, "currentInquiries"),
		DesiredInquiries: str(payload, "desiredInquiries"),
		BudgetRange:      str(payload, "budgetRange"),
		HasSalesTeam:     str(payload, "hasSalesTeam"),
		Score:            score,
		ScoreVersion:     service.ScoreVersion,
		RawAnswers:       string(rawAnswers),
	}

	if err := database.DB.Create(&submission).Error; err != nil {
		log.Printf("Failed to create submission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save submission"})
		return
	}

	// Secondary write: a follow-up call slot. Failure logs a warning and
	// does not block the submission response.
	callRecord := models.CallRecord{SubmissionID: submission.ID, Status: "pending"}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "submission_id"}},
		DoNothing: true,
	}).Create(&callRecord).Error; err != nil {
		log.Printf("Warning: failed to create call record for submission %d: %v", submission.ID, err)
	}

	go h.sendWelcome(submission)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"score": score,
			"id":    submission.ReferenceCode,
		},
	})
}

func (h *OnboardingHandler) sendWelcome(s models.Submission) {
	company := config.AppConfig.Company.Name
	if s.Phone != "" {
		msg := fmt.Sprintf("Hi %s! Thanks for completing the %s growth assessment. Your lead readiness score is %d/100. Our team will call you shortly to walk through the results.", s.Name, company, s.Score)
		h.Notify.SendWhatsApp(s.Phone, msg)
	}
	if s.Email != "" {
		subject := fmt.Sprintf("Your %s growth assessment", company)
		body := fmt.Sprintf("Hi %s,\n\nThanks for completing the assessment. Your lead readiness score is %d/100.\n\nWe'll be in touch to schedule your strategy call.\n\n%s", s.Name, s.Score, company)
		h.Notify.SendEmail(s.Email, subject, body)
	}
}

var waitlistRequired = []string{"name"}

func (h *OnboardingHandler) JoinWaitlist(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON payload"})
		return
	}

	result := service.ValidateRequired(payload, waitlistRequired)
	if !result.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": service.MissingFieldsError(result.MissingFields)})
		return
	}
	if !service.HasContactMethod(payload) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "At least one of email or phone is required"})
		return
	}

	entry := models.WaitlistEntry{
		Name:   str(payload, "name"),
		Email:  str(payload, "email"),
		Phone:  str(payload, "phone"),
		Source: str(payload, "source"),
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("Failed to create waitlist entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to join waitlist"})
		return
	}

	// Mirror to the marketing team's Airtable base, best-effort.
	go func(e models.WaitlistEntry) {
		if h.Airtable.SyncWaitlistEntry(e.Name, e.Email, e.Phone, e.Source) {
			if err := database.DB.Model(&models.WaitlistEntry{}).Where("id = ?", e.ID).Update("synced", true).Error; err != nil {
				log.Printf("Warning: failed to mark waitlist entry %d synced: %v", e.ID, err)
			}
		}
	}(entry)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"id": entry.ID},
	})
}

// str pulls a trimmed string field out of a decoded JSON payload.
func str(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
