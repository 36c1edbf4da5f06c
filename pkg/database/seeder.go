package database

import (
	"log"

	"leadgen-app/config"
	"leadgen-app/internal/models"
	"leadgen-app/internal/utils"

	"gorm.io/gorm"
)

// SeedAdmin creates the back-office admin account from configuration if
// it does not exist yet. Without ADMIN_EMAIL and ADMIN_PASSWORD the seed
// is skipped and session login stays unavailable until they are set.
func SeedAdmin() {
	email := config.AppConfig.Admin.Email
	password := config.AppConfig.Admin.Password

	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var admin models.AdminUser
	if err := DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashedPassword, err := utils.HashPassword(password)
			if err != nil {
				log.Printf("Failed to hash admin password: %v", err)
				return
			}
			admin = models.AdminUser{
				Email:        email,
				PasswordHash: hashedPassword,
				IsActive:     true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("Failed to seed admin user: %v", err)
			} else {
				log.Println("Admin user seeded successfully.")
			}
		}
	}
}
