package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Razorpay RazorpayConfig
	Twilio   TwilioConfig
	OpenAI   OpenAIConfig
	Airtable AirtableConfig
	SMTP     SMTPConfig
	Company  CompanyConfig
}

type ServerConfig struct {
	Port               string
	Env                string
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type AdminConfig struct {
	Email    string
	Password string
	APIKey   string `mapstructure:"api_key"`
}

type RazorpayConfig struct {
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
}

type TwilioConfig struct {
	AccountSID   string `mapstructure:"account_sid"`
	AuthToken    string `mapstructure:"auth_token"`
	WhatsappFrom string `mapstructure:"whatsapp_from"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string
}

type AirtableConfig struct {
	APIKey        string `mapstructure:"api_key"`
	BaseID        string `mapstructure:"base_id"`
	WaitlistTable string `mapstructure:"waitlist_table"`
}

type SMTPConfig struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Sender string
}

type CompanyConfig struct {
	Name    string
	Website string
	Email   string
	Phone   string
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()

	// Explicitly bind environment variables for robustness
	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	viper.BindEnv("DATABASE_URL")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 12)
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("AIRTABLE_WAITLIST_TABLE", "Waitlist")

	// Manually map configuration to struct
	AppConfig = &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			Env:                viper.GetString("SERVER_ENV"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			APIKey:   viper.GetString("ADMIN_API_KEY"),
		},
		Razorpay: RazorpayConfig{
			KeyID:     viper.GetString("RAZORPAY_KEY_ID"),
			KeySecret: viper.GetString("RAZORPAY_KEY_SECRET"),
		},
		Twilio: TwilioConfig{
			AccountSID:   viper.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:    viper.GetString("TWILIO_AUTH_TOKEN"),
			WhatsappFrom: viper.GetString("TWILIO_WHATSAPP_FROM"),
		},
		OpenAI: OpenAIConfig{
			APIKey: viper.GetString("OPENAI_API_KEY"),
			Model:  viper.GetString("OPENAI_MODEL"),
		},
		Airtable: AirtableConfig{
			APIKey:        viper.GetString("AIRTABLE_API_KEY"),
			BaseID:        viper.GetString("AIRTABLE_BASE_ID"),
			WaitlistTable: viper.GetString("AIRTABLE_WAITLIST_TABLE"),
		},
		SMTP: SMTPConfig{
			Host:   viper.GetString("SMTP_HOST"),
			Port:   viper.GetInt("SMTP_PORT"),
			User:   viper.GetString("SMTP_USER"),
			Pass:   viper.GetString("SMTP_PASS"),
			Sender: viper.GetString("SMTP_SENDER"),
		},
		Company: CompanyConfig{
			Name:    viper.GetString("COMPANY_NAME"),
			Website: viper.GetString("COMPANY_WEBSITE"),
			Email:   viper.GetString("COMPANY_EMAIL"),
			Phone:   viper.GetString("COMPANY_PHONE"),
		},
	}

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- Database URL: %s", setOrNot(AppConfig.Database.URL))
	log.Printf("- JWT Secret: %s", setOrNot(AppConfig.Server.JWTSecret))
	log.Printf("- Admin API Key: %s", setOrNot(AppConfig.Admin.APIKey))
	log.Printf("- Razorpay Key ID: %s", setOrNot(AppConfig.Razorpay.KeyID))
	log.Printf("- Twilio Account SID: %s", setOrNot(AppConfig.Twilio.AccountSID))
	log.Printf("- OpenAI API Key: %s", setOrNot(AppConfig.OpenAI.APIKey))
	log.Printf("- Airtable Base ID: %s", setOrNot(AppConfig.Airtable.BaseID))
}

func setOrNot(v string) string {
	if v != "" {
		return "SET"
	}
	return "NOT SET"
}
