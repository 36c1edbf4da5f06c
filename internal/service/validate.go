package service

import (
	"fmt"
	"strings"
)

// ValidationResult reports which required fields a raw payload is missing.
type ValidationResult struct {
	IsValid       bool
	MissingFields []string
}

// ValidateRequired checks a decoded JSON payload against a list of
// required field names. A field is missing when absent, nil, or an empty
// or whitespace-only string. No side effects.
func ValidateRequired(payload map[string]interface{}, required []string) ValidationResult {
	var missing []string
	for _, field := range required {
		v, ok := payload[field]
		if !ok || v == nil {
			missing = append(missing, field)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, field)
		}
	}
	return ValidationResult{IsValid: len(missing) == 0, MissingFields: missing}
}

// MissingFieldsError joins missing field names into the message returned
// with a 400 response.
func MissingFieldsError(missing []string) string {
	return fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))
}

// HasContactMethod reports whether the payload carries at least one of
// email or phone. Used by the waitlist form.
func HasContactMethod(payload map[string]interface{}) bool {
	for _, field := range []string{"email", "phone"} {
		if s, ok := payload[field].(string); ok && strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}
