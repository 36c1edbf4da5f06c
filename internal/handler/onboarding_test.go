package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadgen-app/internal/service"

	"github.com/gin-gonic/gin"
)

// Validation failures return before any persistence, so these tests run
// against a handler with no database attached.

func onboardingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &OnboardingHandler{Airtable: service.NewAirtableClient("", "", ""), Notify: nil}
	r := gin.New()
	r.POST("/api/v1/onboarding/submit", h.Submit)
	r.POST("/api/v1/waitlist/submit", h.JoinWaitlist)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitInvalidJSON(t *testing.T) {
	r := onboardingRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/onboarding/submit", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSubmitMissingFields(t *testing.T) {
	r := onboardingRouter()

	w := postJSON(t, r, "/api/v1/onboarding/submit", map[string]interface{}{
		"name":     "Priya Sharma",
		"industry": "Retail",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Success {
		t.Error("success = true, want false")
	}
	if resp.Error == "" {
		t.Error("error message is empty, want list of missing fields")
	}
}

func TestSubmitBlankFieldCountsAsMissing(t *testing.T) {
	r := onboardingRouter()

	payload := map[string]interface{}{
		"name":             "Priya Sharma",
		"industry":         "   ",
		"city":             "Pune",
		"avgCustomerValue": "50000",
		"currentInquiries": "5",
		"desiredInquiries": "20",
		"budgetRange":      "25k-40k",
		"hasSalesTeam":     "yes",
		"score":            70,
	}

	w := postJSON(t, r, "/api/v1/onboarding/submit", payload)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestJoinWaitlistRequiresName(t *testing.T) {
	r := onboardingRouter()

	w := postJSON(t, r, "/api/v1/waitlist/submit", map[string]interface{}{
		"email": "priya@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestJoinWaitlistRequiresContactMethod(t *testing.T) {
	r := onboardingRouter()

	w := postJSON(t, r, "/api/v1/waitlist/submit", map[string]interface{}{
		"name":   "Priya Sharma",
		"source": "landing_page",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != "At least one of email or phone is required" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestStrTrimsAndTypeChecks(t *testing.T) {
	payload := map[string]interface{}{
		"name":  "  Priya  ",
		"score": 72,
		"nil":   nil,
	}

	if got := str(payload, "name"); got != "Priya" {
		t.Errorf("str(name) = %q, want %q", got, "Priya")
	}
	if got := str(payload, "score"); got != "" {
		t.Errorf("str(score) = %q, want empty for non-string", got)
	}
	if got := str(payload, "nil"); got != "" {
		t.Errorf("str(nil) = %q, want empty", got)
	}
	if got := str(payload, "absent"); got != "" {
		t.Errorf("str(absent) = %q, want empty", got)
	}
}
