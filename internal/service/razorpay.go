package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentGateway wraps the Razorpay client for order creation. Signature
// verification stays local so it can run without network access.
type PaymentGateway struct {
	keyID     string
	keySecret string
	client    *razorpay.Client
}

func NewPaymentGateway(keyID, keySecret string) *PaymentGateway {
	var client *razorpay.Client
	if keyID != "" && keySecret != "" {
		client = razorpay.NewClient(keyID, keySecret)
	}
	return &PaymentGateway{keyID: keyID, keySecret: keySecret, client: client}
}

// Configured reports whether gateway credentials are present. Routes that
// need the gateway answer 500 with a descriptive error when they are not.
func (g *PaymentGateway) Configured() bool {
	return g.client != nil
}

// CreateOrder registers an order with Razorpay and returns its order id.
// Amount is in rupees; Razorpay expects paise.
func (g *PaymentGateway) CreateOrder(amount float64, currency, receipt string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("razorpay credentials not configured")
	}

	data := map[string]interface{}{
		"amount":   toPaise(amount),
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return orderID, nil
}

// toPaise converts a rupee amount to paise. Rounded, not truncated:
// amounts like 349.70 are not exactly representable in a float64 and
// plain truncation would drop a paisa.
func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// VerifySignature recomputes HMAC-SHA256 over "orderID|paymentID" with the
// key secret and compares it to the signature Razorpay sent. The compare
// is constant-time.
func (g *PaymentGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifyRazorpaySignature(g.keySecret, orderID, paymentID, signature)
}

// VerifyRazorpaySignature is the raw check, exposed for reuse and tests.
func VerifyRazorpaySignature(secret, orderID, paymentID, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
