package utils

import (
	"testing"

	"leadgen-app/config"
)

func setTokenConfig(secret string) {
	config.AppConfig = &config.Config{
		Server: config.ServerConfig{JWTSecret: secret, JWTExpirationHours: 1},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	setTokenConfig("round-trip-secret")

	token, err := GenerateAdminToken(7, "admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAdminToken() error: %v", err)
	}

	claims, err := ValidateAdminToken(token)
	if err != nil {
		t.Fatalf("ValidateAdminToken() error: %v", err)
	}
	if claims.AdminID != 7 {
		t.Errorf("AdminID = %d, want 7", claims.AdminID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	setTokenConfig("")

	if _, err := GenerateAdminToken(1, "admin@example.com"); err == nil {
		t.Error("expected error when JWT secret is not configured")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	setTokenConfig("first-secret")
	token, err := GenerateAdminToken(1, "admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAdminToken() error: %v", err)
	}

	setTokenConfig("second-secret")
	if _, err := ValidateAdminToken(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}
