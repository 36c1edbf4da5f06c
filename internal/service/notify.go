package service

import (
	"log"

	"leadgen-app/config"
	"leadgen-app/internal/models"
	"leadgen-app/pkg/database"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
)

// Dispatcher sends outbound WhatsApp and email messages and records
// dashboard notifications. Every send is best-effort: failures are logged
// and never propagated, so notification trouble cannot fail a payment,
// signup, or delivery.
type Dispatcher struct {
	twilioClient *twilio.RestClient
	whatsappFrom string
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		whatsappFrom: config.AppConfig.Twilio.WhatsappFrom,
	}
	if config.AppConfig.Twilio.AccountSID != "" && config.AppConfig.Twilio.AuthToken != "" {
		d.twilioClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.AppConfig.Twilio.AccountSID,
			Password: config.AppConfig.Twilio.AuthToken,
		})
	}
	return d
}

// SendWhatsApp delivers a templated message to a phone number. Numbers
// without a country code get the India prefix, matching the funnel's
// audience.
func (d *Dispatcher) SendWhatsApp(phone, body string) {
	if d.twilioClient == nil {
		log.Println("Twilio credentials not configured, skipping WhatsApp message")
		return
	}
	if phone == "" {
		return
	}

	if len(phone) == 10 {
		phone = "+91" + phone
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo("whatsapp:" + phone)
	params.SetFrom("whatsapp:" + d.whatsappFrom)
	params.SetBody(body)

	if _, err := d.twilioClient.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send WhatsApp message to %s: %v", phone, err)
		return
	}
	log.Printf("WhatsApp message sent to %s", phone)
}

// SendEmail delivers a transactional email via SMTP.
func (d *Dispatcher) SendEmail(to, subject, body string) {
	smtp := config.AppConfig.SMTP
	if smtp.Host == "" || smtp.Sender == "" {
		log.Println("SMTP not configured, skipping email")
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtp.Sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	dialer := gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Pass)
	if err := dialer.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return
	}
	log.Printf("Email sent to %s", to)
}

// Record persists a read-tracked dashboard notification for a customer.
func (d *Dispatcher) Record(customerID uint, ntype, title, message, priority string) {
	notification := models.Notification{
		CustomerID: customerID,
		Type:       ntype,
		Title:      title,
		Message:    message,
		Priority:   priority,
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		log.Printf("Failed to record notification for customer %d: %v", customerID, err)
	}
}
