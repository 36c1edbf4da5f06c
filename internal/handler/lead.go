package handler

import (
	"fmt"
	"log"
	"net/http"

	"leadgen-app/internal/models"
	"leadgen-app/pkg/database"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct{}

func (h *LeadHandler) List(c *gin.Context) {
	status := c.Query("status")

	query := database.DB.Order("created_at desc")
	if status != "" {
		if !models.ValidLeadStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fmt.Sprintf("Unknown lead status: %s", status)})
			return
		}
		query = query.Where("status = ?", status)
	}

	var leads []models.Lead
	if err := query.Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"leads": leads}})
}

type CreateLeadRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	QualityScore int    `json:"quality_score"`
	CustomerID   uint   `json:"customer_id"`
}

func (h *LeadHandler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	lead := models.Lead{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Status:       models.LeadNew,
		QualityScore: req.QualityScore,
		CustomerID:   req.CustomerID,
	}

	if err := database.DB.Create(&lead).Error; err != nil {
		log.Printf("Failed to create lead: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create lead"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": lead})
}

// UpdateStatus moves a lead through the pipeline. Backward moves and
// moves out of won/lost are rejected.
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !models.ValidLeadStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fmt.Sprintf("Unknown lead status: %s", req.Status)})
		return
	}

	var lead models.Lead
	if err := database.DB.First(&lead, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Lead not found"})
		return
	}

	if !models.CanAdvanceLead(lead.Status, req.Status) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": fmt.Sprintf("Cannot move lead from %s to %s", lead.Status, req.Status)})
		return
	}

	if err := database.DB.Model(&lead).Update("status", req.Status).Error; err != nil {
		log.Printf("Failed to update lead %s status: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update lead status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"id": lead.ID, "status": req.Status}})
}
