package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"leadgen-app/internal/models"
	"leadgen-app/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tests below pin the state machines on a real database: one-way
// verification, delivery idempotency and terminal payment completion.

func openLifecycleDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "app.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Inquiry{},
		&models.Client{},
		&models.CustomPlan{},
		&models.Payment{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedInquiry(t *testing.T, db *gorm.DB, inq models.Inquiry) models.Inquiry {
	t.Helper()
	if inq.Name == "" {
		inq.Name = "Rahul Verma"
	}
	if inq.Email == "" {
		inq.Email = "rahul@example.com"
	}
	if inq.Requirement == "" {
		inq.Requirement = "Need 50 qualified leads per month"
	}
	if err := db.Create(&inq).Error; err != nil {
		t.Fatalf("failed to seed inquiry: %v", err)
	}
	return inq
}

func reloadInquiry(t *testing.T, db *gorm.DB, id uint) models.Inquiry {
	t.Helper()
	var inq models.Inquiry
	if err := db.First(&inq, id).Error; err != nil {
		t.Fatalf("failed to reload inquiry %d: %v", id, err)
	}
	return inq
}

func TestVerifyStampsVerifiedAt(t *testing.T) {
	db := openLifecycleDB(t)
	r := inquiryRouter(&stubScorer{})

	inq := seedInquiry(t, db, models.Inquiry{VerificationStatus: models.VerificationPending})

	w := postJSON(t, r, "/api/v1/inquiries/verify", map[string]interface{}{
		"id":                  inq.ID,
		"verification_status": "verified",
		"verification_notes":  "called, genuine requirement",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	got := reloadInquiry(t, db, inq.ID)
	if got.VerificationStatus != models.VerificationVerified {
		t.Errorf("verification_status = %q, want verified", got.VerificationStatus)
	}
	if got.VerifiedAt == nil {
		t.Error("verified_at not stamped")
	}
	if got.VerificationNotes != "called, genuine requirement" {
		t.Errorf("verification_notes = %q", got.VerificationNotes)
	}
}

func TestVerifyIsOneWay(t *testing.T) {
	db := openLifecycleDB(t)
	r := inquiryRouter(&stubScorer{})

	verifiedAt := time.Now().Add(-time.Hour)
	cases := []struct {
		name string
		seed models.Inquiry
		to   string
	}{
		{"verified to unqualified", models.Inquiry{VerificationStatus: models.VerificationVerified, VerifiedAt: &verifiedAt}, "unqualified"},
		{"unqualified to verified", models.Inquiry{VerificationStatus: models.VerificationUnqualified}, "verified"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inq := seedInquiry(t, db, tc.seed)

			w := postJSON(t, r, "/api/v1/inquiries/verify", map[string]interface{}{
				"id":                  inq.ID,
				"verification_status": tc.to,
			})
			if w.Code != http.StatusConflict {
				t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
			}

			got := reloadInquiry(t, db, inq.ID)
			if got.VerificationStatus != tc.seed.VerificationStatus {
				t.Errorf("verification_status = %q, want %q unchanged", got.VerificationStatus, tc.seed.VerificationStatus)
			}
			if tc.seed.VerifiedAt != nil && got.VerifiedAt == nil {
				t.Error("verified_at was cleared")
			}
		})
	}
}

func TestVerifyReassertIsNoOp(t *testing.T) {
	db := openLifecycleDB(t)
	r := inquiryRouter(&stubScorer{})

	verifiedAt := time.Now().Add(-time.Hour)
	inq := seedInquiry(t, db, models.Inquiry{
		VerificationStatus: models.VerificationVerified,
		VerifiedAt:         &verifiedAt,
	})
	before := reloadInquiry(t, db, inq.ID)

	w := postJSON(t, r, "/api/v1/inquiries/verify", map[string]interface{}{
		"id":                  inq.ID,
		"verification_status": "verified",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	got := reloadInquiry(t, db, inq.ID)
	if got.VerifiedAt == nil || !got.VerifiedAt.Equal(*before.VerifiedAt) {
		t.Errorf("verified_at changed on re-assert: %v -> %v", before.VerifiedAt, got.VerifiedAt)
	}
}

func TestDeliverRequiresVerified(t *testing.T) {
	db := openLifecycleDB(t)
	r := inquiryRouter(&stubScorer{})

	inq := seedInquiry(t, db, models.Inquiry{VerificationStatus: models.VerificationPending})

	w := postJSON(t, r, "/api/v1/inquiries/deliver", map[string]interface{}{"id": inq.ID})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}

	got := reloadInquiry(t, db, inq.ID)
	if got.Delivered || got.DeliveredAt != nil {
		t.Error("unverified inquiry was marked delivered")
	}
}

func TestDeliverIsIdempotent(t *testing.T) {
	db := openLifecycleDB(t)
	r := inquiryRouter(&stubScorer{})

	verifiedAt := time.Now().Add(-time.Hour)
	inq := seedInquiry(t, db, models.Inquiry{
		VerificationStatus: models.VerificationVerified,
		VerifiedAt:         &verifiedAt,
	})

	w := postJSON(t, r, "/api/v1/inquiries/deliver", map[string]interface{}{"id": inq.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("first delivery: status = %d, want 200: %s", w.Code, w.Body.String())
	}

	first := reloadInquiry(t, db, inq.ID)
	if !first.Delivered || first.DeliveredAt == nil {
		t.Fatal("first delivery did not stamp delivered/delivered_at")
	}

	w = postJSON(t, r, "/api/v1/inquiries/deliver", map[string]interface{}{"id": inq.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("second delivery: status = %d, want 200: %s", w.Code, w.Body.String())
	}

	second := reloadInquiry(t, db, inq.ID)
	if !second.DeliveredAt.Equal(*first.DeliveredAt) {
		t.Errorf("delivered_at moved on repeat delivery: %v -> %v", first.DeliveredAt, second.DeliveredAt)
	}
}

func signOrder(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPaymentVerifyActivatesOnce(t *testing.T) {
	db := openLifecycleDB(t)
	r := paymentRouter("test-secret")

	client := models.Client{
		BusinessName: "Asha Traders",
		Email:        "owner@ashatraders.example",
		Status:       models.ClientPending,
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	plan := models.CustomPlan{
		ClientID:    client.ID,
		PlanName:    "Growth",
		MonthlyCost: 25000,
		LeadsQuota:  40,
		Status:      models.ClientPending,
	}
	if err := db.Create(&plan).Error; err != nil {
		t.Fatalf("failed to seed plan: %v", err)
	}
	payment := models.Payment{
		RazorpayOrderID: "order_lifecycle1",
		Receipt:         "receipt-1",
		Amount:          25000,
		Currency:        "INR",
		Status:          models.PaymentCreated,
		ClientID:        client.ID,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("failed to seed payment: %v", err)
	}

	body := map[string]interface{}{
		"orderId":   payment.RazorpayOrderID,
		"paymentId": "pay_lifecycle1",
		"signature": signOrder("test-secret", payment.RazorpayOrderID, "pay_lifecycle1"),
	}

	w := postJSON(t, r, "/api/v1/payment/verify", body)
	if w.Code != http.StatusOK {
		t.Fatalf("first verify: status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var gotPayment models.Payment
	if err := db.Where("razorpay_order_id = ?", payment.RazorpayOrderID).First(&gotPayment).Error; err != nil {
		t.Fatalf("failed to reload payment: %v", err)
	}
	if gotPayment.Status != models.PaymentCompleted {
		t.Errorf("payment status = %q, want completed", gotPayment.Status)
	}
	if gotPayment.RazorpayPaymentID != "pay_lifecycle1" {
		t.Errorf("razorpay_payment_id = %q", gotPayment.RazorpayPaymentID)
	}

	var gotClient models.Client
	if err := db.First(&gotClient, client.ID).Error; err != nil {
		t.Fatalf("failed to reload client: %v", err)
	}
	if gotClient.Status != models.ClientActive {
		t.Errorf("client status = %q, want active", gotClient.Status)
	}

	var gotPlan models.CustomPlan
	if err := db.Where("client_id = ?", client.ID).First(&gotPlan).Error; err != nil {
		t.Fatalf("failed to reload plan: %v", err)
	}
	if gotPlan.Status != models.ClientActive {
		t.Errorf("plan status = %q, want active", gotPlan.Status)
	}

	// A replayed callback must leave the payment completed and the
	// client active.
	w = postJSON(t, r, "/api/v1/payment/verify", body)
	if w.Code != http.StatusOK {
		t.Fatalf("second verify: status = %d, want 200: %s", w.Code, w.Body.String())
	}

	if err := db.Where("razorpay_order_id = ?", payment.RazorpayOrderID).First(&gotPayment).Error; err != nil {
		t.Fatalf("failed to reload payment: %v", err)
	}
	if gotPayment.Status != models.PaymentCompleted {
		t.Errorf("payment status after replay = %q, want completed", gotPayment.Status)
	}
	if err := db.First(&gotClient, client.ID).Error; err != nil {
		t.Fatalf("failed to reload client: %v", err)
	}
	if gotClient.Status != models.ClientActive {
		t.Errorf("client status after replay = %q, want active", gotClient.Status)
	}
}
