package handler

import (
	"fmt"
	"log"
	"net/http"

	"leadgen-app/config"
	"leadgen-app/internal/models"
	"leadgen-app/internal/service"
	"leadgen-app/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type PaymentHandler struct {
	Gateway *service.PaymentGateway
	Notify  *service.Dispatcher
}

type CreateOrderRequest struct {
	ClientID uint `json:"client_id" binding:"required"`
}

// CreateOrder registers a gateway order for a client's custom plan and
// records the pending payment.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !h.Gateway.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Payment gateway credentials are not configured"})
		return
	}

	var client models.Client
	if err := database.DB.First(&client, req.ClientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Client not found"})
		return
	}

	var plan models.CustomPlan
	if err := database.DB.Where("client_id = ?", client.ID).First(&plan).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Client has no custom plan to pay for"})
		return
	}

	receipt := uuid.New().String()
	orderID, err := h.Gateway.CreateOrder(plan.MonthlyCost, "INR", receipt)
	if err != nil {
		log.Printf("Failed to create gateway order for client %d: %v", client.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create payment order"})
		return
	}

	payment := models.Payment{
		RazorpayOrderID: orderID,
		Receipt:         receipt,
		Amount:          plan.MonthlyCost,
		Currency:        "INR",
		Status:          models.PaymentCreated,
		ClientID:        client.ID,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		log.Printf("Failed to record payment for order %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"order_id": orderID,
			"amount":   plan.MonthlyCost,
			"currency": "INR",
			"key_id":   config.AppConfig.Razorpay.KeyID,
		},
	})
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// Verify checks the gateway signature and, on match, completes the
// payment and activates the client and their plan in one transaction.
// A mismatch returns 400 without touching any state.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if config.AppConfig.Razorpay.KeySecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Payment gateway credentials are not configured"})
		return
	}

	if !h.Gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Payment signature verification failed"})
		return
	}

	tx := database.DB.Begin()

	var payment models.Payment
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("razorpay_order_id = ?", req.OrderID).First(&payment).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Payment not found"})
		return
	}

	firstCompletion := payment.Status != models.PaymentCompleted

	payment.RazorpayPaymentID = req.PaymentID
	payment.RazorpaySignature = req.Signature
	payment.Status = models.PaymentCompleted
	if err := tx.Save(&payment).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to complete payment %s: %v", req.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update payment"})
		return
	}

	var client models.Client
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&client, payment.ClientID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Client not found for payment"})
		return
	}

	client.Status = models.ClientActive
	if err := tx.Save(&client).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to activate client %d: %v", client.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to activate client"})
		return
	}

	if err := tx.Model(&models.CustomPlan{}).
		Where("client_id = ?", client.ID).
		Update("status", models.ClientActive).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to activate plan for client %d: %v", client.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to activate plan"})
		return
	}

	tx.Commit()

	// Welcome the client, best-effort. Failure never rolls back the payment.
	if firstCompletion {
		go h.sendWelcome(client, payment)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Payment verified and subscription activated",
		"paymentId": req.PaymentID,
	})
}

func (h *PaymentHandler) sendWelcome(client models.Client, payment models.Payment) {
	company := config.AppConfig.Company.Name
	h.Notify.Record(client.ID, "payment_received", "Subscription activated",
		fmt.Sprintf("Payment of ₹%.2f received. Your %s subscription is now active.", payment.Amount, company), "high")
	if client.Phone != "" {
		h.Notify.SendWhatsApp(client.Phone,
			fmt.Sprintf("Hello %s! 🎉 Your payment of ₹%.2f was received and your %s subscription is now active. Verified leads will start arriving in your dashboard.", client.BusinessName, payment.Amount, company))
	}
	if client.Email != "" {
		h.Notify.SendEmail(client.Email, "Welcome aboard — subscription active",
			fmt.Sprintf("Hi %s,\n\nYour payment of ₹%.2f was received and your subscription is active.\n\nVerified leads will start arriving in your dashboard shortly.\n\n%s", client.ContactPerson, payment.Amount, company))
	}
}

// Status returns the current state of one payment by order id.
func (h *PaymentHandler) Status(c *gin.Context) {
	orderID := c.Param("order_id")

	var payment models.Payment
	if err := database.DB.Where("razorpay_order_id = ?", orderID).First(&payment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Payment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"order_id": payment.RazorpayOrderID, "status": payment.Status}})
}
