package handler

import (
	"net/http"
	"strconv"

	"leadgen-app/internal/models"
	"leadgen-app/pkg/database"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func (h *NotificationHandler) List(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Query("customer_id"))
	if err != nil || customerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "customer_id query parameter is required"})
		return
	}

	var notifications []models.Notification
	if err := database.DB.Where("customer_id = ?", customerID).
		Order("created_at desc").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch notifications"})
		return
	}

	var unread int64
	database.DB.Model(&models.Notification{}).
		Where("customer_id = ? AND is_read = ?", customerID, false).Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"notifications": notifications,
			"unread":        unread,
		},
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	var notification models.Notification
	if err := database.DB.First(&notification, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Notification not found"})
		return
	}

	if err := database.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to mark notification read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"id": notification.ID, "is_read": true}})
}
