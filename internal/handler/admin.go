package handler

import (
	"log"
	"net/http"
	"time"

	"leadgen-app/config"
	"leadgen-app/internal/middleware"
	"leadgen-app/internal/models"
	"leadgen-app/internal/utils"
	"leadgen-app/pkg/database"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var admin models.AdminUser
	if err := database.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	if !admin.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Account is inactive"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(admin.ID, admin.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create session"})
		return
	}

	go func(id uint) {
		now := time.Now()
		if err := database.DB.Model(&models.AdminUser{}).Where("id = ?", id).Update("last_login_at", &now).Error; err != nil {
			log.Printf("Failed to record admin login time: %v", err)
		}
	}(admin.ID)

	maxAge := config.AppConfig.Server.JWTExpirationHours * 3600
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"email": admin.Email}})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"message": "Logged out"}})
}

func (h *AdminHandler) ListClients(c *gin.Context) {
	status := c.Query("status")

	query := database.DB.Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var clients []models.Client
	if err := query.Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch clients"})
		return
	}

	// Attach each client's plan so the back-office list shows quota
	// and billing at a glance.
	type clientWithPlan struct {
		models.Client
		Plan *models.CustomPlan `json:"plan,omitempty"`
	}

	result := make([]clientWithPlan, 0, len(clients))
	for _, client := range clients {
		row := clientWithPlan{Client: client}
		var plan models.CustomPlan
		if err := database.DB.Where("client_id = ?", client.ID).First(&plan).Error; err == nil {
			row.Plan = &plan
		}
		result = append(result, row)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"clients": result}})
}

// Dashboard aggregates pipeline counts for the back-office landing page.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	var submissions, pendingInquiries, verifiedInquiries, deliveredInquiries int64
	var activeClients, completedPayments int64

	database.DB.Model(&models.Submission{}).Count(&submissions)
	database.DB.Model(&models.Inquiry{}).Where("verification_status = ?", models.VerificationPending).Count(&pendingInquiries)
	database.DB.Model(&models.Inquiry{}).Where("verification_status = ?", models.VerificationVerified).Count(&verifiedInquiries)
	database.DB.Model(&models.Inquiry{}).Where("delivered = ?", true).Count(&deliveredInquiries)
	database.DB.Model(&models.Client{}).Where("status = ?", models.ClientActive).Count(&activeClients)
	database.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentCompleted).Count(&completedPayments)

	var revenue float64
	database.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"submissions":         submissions,
			"pending_inquiries":   pendingInquiries,
			"verified_inquiries":  verifiedInquiries,
			"delivered_inquiries": deliveredInquiries,
			"active_clients":      activeClients,
			"completed_payments":  completedPayments,
			"total_revenue":       revenue,
		},
	})
}
