package middleware

import (
	"crypto/hmac"
	"net/http"

	"leadgen-app/config"
	"leadgen-app/internal/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the HTTP-only cookie carrying the admin session token.
const SessionCookie = "admin_session"

// AdminAuth protects back-office routes. A request is authorized by
// either a valid admin session cookie or the X-Admin-Key header matched
// in constant time against the configured service key.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader("X-Admin-Key"); key != "" {
			configured := config.AppConfig.Admin.APIKey
			if configured != "" && hmac.Equal([]byte(key), []byte(configured)) {
				c.Set("adminVia", "api_key")
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid admin key"})
			return
		}

		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Admin authorization required"})
			return
		}

		claims, err := utils.ValidateAdminToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired session"})
			return
		}

		c.Set("adminVia", "session")
		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Next()
	}
}
