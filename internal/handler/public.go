package handler

import (
	"net/http"

	"leadgen-app/config"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct{}

// GetPublicConfig exposes the company details the marketing site renders.
func (h *PublicHandler) GetPublicConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"company_name":    config.AppConfig.Company.Name,
			"company_website": config.AppConfig.Company.Website,
			"company_email":   config.AppConfig.Company.Email,
			"company_phone":   config.AppConfig.Company.Phone,
		},
	})
}
