package handler

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"leadgen-app/internal/models"
	"leadgen-app/internal/service"
	"leadgen-app/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// InquiryScorer rates one inquiry. Satisfied by service.AIScorer and
// mocked in tests.
type InquiryScorer interface {
	ScoreInquiry(ctx context.Context, f service.ScoringFields) (service.InquiryScore, error)
}

type InquiryHandler struct {
	Scorer InquiryScorer
	Notify *service.Dispatcher
}

type CreateInquiryRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Industry    string `json:"industry"`
	Requirement string `json:"requirement" binding:"required"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Source      string `json:"source"`
	UTM         string `json:"utm"`
}

func (h *InquiryHandler) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.Email == "" && req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "At least one of email or phone is required"})
		return
	}

	inquiry := models.Inquiry{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Industry:           req.Industry,
		Requirement:        req.Requirement,
		Budget:             req.Budget,
		Timeline:           req.Timeline,
		Source:             req.Source,
		UTM:                req.UTM,
		VerificationStatus: models.VerificationPending,
	}

	if err := database.DB.Create(&inquiry).Error; err != nil {
		log.Printf("Failed to create inquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": inquiry})
}

func (h *InquiryHandler) List(c *gin.Context) {
	status := c.Query("verification_status")

	query := database.DB.Order("created_at desc")
	if status != "" {
		query = query.Where("verification_status = ?", status)
	}

	var inquiries []models.Inquiry
	if err := query.Find(&inquiries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch inquiries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": inquiries})
}

type VerifyInquiryRequest struct {
	ID                 uint   `json:"id" binding:"required"`
	VerificationStatus string `json:"verification_status" binding:"required"`
	VerificationNotes  string `json:"verification_notes"`
}

// Verify applies the admin verdict. Transitions are one-way: an inquiry
// leaves pending exactly once, and verified_at is never cleared.
func (h *InquiryHandler) Verify(c *gin.Context) {
	var req VerifyInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.VerificationStatus != models.VerificationVerified && req.VerificationStatus != models.VerificationUnqualified {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "verification_status must be verified or unqualified"})
		return
	}

	var inquiry models.Inquiry
	if err := database.DB.First(&inquiry, req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Inquiry not found"})
		return
	}

	if inquiry.VerificationStatus == req.VerificationStatus {
		// Re-asserting the current verdict is a no-op.
		c.JSON(http.StatusOK, gin.H{"success": true, "data": inquiry})
		return
	}
	if inquiry.VerificationStatus != models.VerificationPending {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": fmt.Sprintf("Inquiry is already %s", inquiry.VerificationStatus)})
		return
	}

	updates := map[string]interface{}{
		"verification_status": req.VerificationStatus,
		"verification_notes":  req.VerificationNotes,
	}
	if req.VerificationStatus == models.VerificationVerified {
		now := time.Now()
		updates["verified_at"] = &now
	}

	if err := database.DB.Model(&inquiry).Updates(updates).Error; err != nil {
		log.Printf("Failed to update inquiry %d verification: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update verification status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": inquiry})
}

type DeliverInquiryRequest struct {
	ID uint `json:"id" binding:"required"`
}

// Deliver releases a verified inquiry to its client. Idempotent: a second
// call leaves delivered_at untouched.
func (h *InquiryHandler) Deliver(c *gin.Context) {
	var req DeliverInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var inquiry models.Inquiry
	if err := database.DB.First(&inquiry, req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Inquiry not found"})
		return
	}

	if inquiry.VerificationStatus != models.VerificationVerified {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Inquiry must be verified before delivery"})
		return
	}

	if inquiry.Delivered {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": inquiry})
		return
	}

	now := time.Now()
	if err := database.DB.Model(&inquiry).Updates(map[string]interface{}{
		"delivered":    true,
		"delivered_at": &now,
	}).Error; err != nil {
		log.Printf("Failed to mark inquiry %d delivered: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to mark inquiry delivered"})
		return
	}

	// Tell the receiving client a fresh lead landed, best-effort.
	if inquiry.ClientEmail != "" {
		go func(inq models.Inquiry) {
			var client models.Client
			if err := database.DB.Where("email = ?", inq.ClientEmail).First(&client).Error; err != nil {
				log.Printf("Delivery notification skipped, no client for %s: %v", inq.ClientEmail, err)
				return
			}
			h.Notify.Record(client.ID, "lead_delivered", "New verified lead",
				fmt.Sprintf("A verified inquiry from %s (%s) has been delivered to your dashboard.", inq.Name, inq.Industry), "high")
			h.Notify.SendEmail(inq.ClientEmail, "New verified lead delivered",
				fmt.Sprintf("Hi %s,\n\nA new verified inquiry from %s is waiting in your dashboard.\n\nRequirement: %s\nBudget: %s\nTimeline: %s\n", client.ContactPerson, inq.Name, inq.Requirement, inq.Budget, inq.Timeline))
		}(inquiry)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": inquiry})
}

type AssignClientRequest struct {
	ID           uint    `json:"id" binding:"required"`
	ClientEmail  string  `json:"client_email" binding:"required"`
	BusinessName string  `json:"business_name"`
	PlanName     string  `json:"plan_name"`
	MonthlyCost  float64 `json:"monthly_cost"`
	LeadsQuota   int     `json:"leads_quota"`
}

// AssignClient routes an inquiry to a paying client, creating the client
// and upserting their custom plan as needed.
func (h *InquiryHandler) AssignClient(c *gin.Context) {
	var req AssignClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var inquiry models.Inquiry
	if err := database.DB.First(&inquiry, req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Inquiry not found"})
		return
	}

	// Find or create the client by email.
	var client models.Client
	if err := database.DB.Where("email = ?", req.ClientEmail).First(&client).Error; err != nil {
		client = models.Client{
			BusinessName: req.BusinessName,
			Email:        req.ClientEmail,
			Industry:     inquiry.Industry,
			Status:       models.ClientPending,
		}
		if client.BusinessName == "" {
			client.BusinessName = req.ClientEmail
		}
		if err := database.DB.Create(&client).Error; err != nil {
			log.Printf("Failed to create client %s: %v", req.ClientEmail, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create client"})
			return
		}
	}

	// One plan per client: insert-on-conflict instead of select-then-branch.
	if req.PlanName != "" {
		plan := models.CustomPlan{
			ClientID:    client.ID,
			PlanName:    req.PlanName,
			MonthlyCost: req.MonthlyCost,
			LeadsQuota:  req.LeadsQuota,
			Status:      models.ClientPending,
		}
		if err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"plan_name", "monthly_cost", "leads_quota", "updated_at"}),
		}).Create(&plan).Error; err != nil {
			log.Printf("Failed to upsert custom plan for client %d: %v", client.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save custom plan"})
			return
		}
	}

	if err := database.DB.Model(&inquiry).Update("client_email", req.ClientEmail).Error; err != nil {
		log.Printf("Failed to assign inquiry %d to client: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to assign client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"inquiry_id": inquiry.ID, "client_id": client.ID}})
}

type AIScoreRequest struct {
	ID uint `json:"id" binding:"required"`
}

// AIScore rates one inquiry with the text-generation model and persists
// the verdict. A reply the scorer could not parse still lands as the
// fixed fallback with HTTP 200; only transport failures surface as 500.
func (h *InquiryHandler) AIScore(c *gin.Context) {
	var req AIScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var inquiry models.Inquiry
	if err := database.DB.First(&inquiry, req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Inquiry not found"})
		return
	}

	verdict, err := h.Scorer.ScoreInquiry(c.Request.Context(), service.ScoringFields{
		Name:        inquiry.Name,
		Industry:    inquiry.Industry,
		Requirement: inquiry.Requirement,
		Budget:      inquiry.Budget,
		Timeline:    inquiry.Timeline,
		Source:      inquiry.Source,
	})
	if err != nil {
		log.Printf("AI scoring failed for inquiry %d: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "AI scoring failed"})
		return
	}

	now := time.Now()
	if err := database.DB.Model(&inquiry).Updates(map[string]interface{}{
		"ai_score":     verdict.Score,
		"ai_reason":    verdict.Reason,
		"ai_scored_at": &now,
	}).Error; err != nil {
		log.Printf("Failed to persist AI score for inquiry %d: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save AI score"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "score": verdict.Score, "reason": verdict.Reason})
}
