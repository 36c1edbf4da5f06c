package main

import (
	"log"
	"time"

	"leadgen-app/config"
	"leadgen-app/internal/handler"
	"leadgen-app/internal/middleware"
	"leadgen-app/internal/models"
	"leadgen-app/internal/service"
	"leadgen-app/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")

	err := database.DB.AutoMigrate(
		&models.Submission{},
		&models.CallRecord{},
		&models.WaitlistEntry{},
		&models.Inquiry{},
		&models.Client{},
		&models.CustomPlan{},
		&models.Payment{},
		&models.Lead{},
		&models.Notification{},
		&models.AdminUser{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedAdmin()

	// 4. Initialize Router
	r := gin.Default()

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Shared service clients
	dispatcher := service.NewDispatcher()
	gateway := service.NewPaymentGateway(config.AppConfig.Razorpay.KeyID, config.AppConfig.Razorpay.KeySecret)
	scorer := service.NewAIScorer(config.AppConfig.OpenAI.APIKey, config.AppConfig.OpenAI.Model)
	airtable := service.NewAirtableClient(
		config.AppConfig.Airtable.APIKey,
		config.AppConfig.Airtable.BaseID,
		config.AppConfig.Airtable.WaitlistTable,
	)

	funnelLimiter := middleware.NewRateLimiter(20, time.Minute)
	funnelLimiter.StartCleanup(5 * time.Minute)

	// 5. Setup Routes
	onboardingHandler := &handler.OnboardingHandler{Airtable: airtable, Notify: dispatcher}
	funnelRoutes := r.Group("/api/v1")
	funnelRoutes.Use(funnelLimiter.Middleware())
	{
		funnelRoutes.POST("/onboarding/submit", onboardingHandler.Submit)
		funnelRoutes.POST("/waitlist/submit", onboardingHandler.JoinWaitlist)
	}

	adminHandler := &handler.AdminHandler{}
	r.POST("/api/v1/admin/login", adminHandler.Login)
	r.POST("/api/v1/admin/logout", adminHandler.Logout)

	inquiryHandler := &handler.InquiryHandler{Scorer: scorer, Notify: dispatcher}
	inquiryRoutes := r.Group("/api/v1/inquiries")
	inquiryRoutes.Use(middleware.AdminAuth())
	{
		inquiryRoutes.POST("", inquiryHandler.Create)
		inquiryRoutes.GET("", inquiryHandler.List)
		inquiryRoutes.POST("/verify", inquiryHandler.Verify)
		inquiryRoutes.POST("/deliver", inquiryHandler.Deliver)
		inquiryRoutes.POST("/assign-client", inquiryHandler.AssignClient)
		inquiryRoutes.POST("/ai-score", inquiryHandler.AIScore)
	}

	leadHandler := &handler.LeadHandler{}
	notificationHandler := &handler.NotificationHandler{}
	adminRoutes := r.Group("/api/v1/admin")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("/clients", adminHandler.ListClients)
		adminRoutes.GET("/dashboard", adminHandler.Dashboard)
		adminRoutes.GET("/leads", leadHandler.List)
		adminRoutes.POST("/leads", leadHandler.Create)
		adminRoutes.PUT("/leads/:id/status", leadHandler.UpdateStatus)
		adminRoutes.GET("/notifications", notificationHandler.List)
		adminRoutes.POST("/notifications/:id/read", notificationHandler.MarkRead)
	}

	paymentHandler := &handler.PaymentHandler{Gateway: gateway, Notify: dispatcher}
	paymentRoutes := r.Group("/api/v1/payment")
	{
		paymentRoutes.POST("/create-order", paymentHandler.CreateOrder)
		paymentRoutes.POST("/verify", paymentHandler.Verify)
		paymentRoutes.GET("/status/:order_id", paymentHandler.Status)
	}

	publicHandler := &handler.PublicHandler{}
	r.GET("/api/v1/public/config", publicHandler.GetPublicConfig)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 6. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
