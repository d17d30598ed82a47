package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParseSubject(t *testing.T) {
	tok, err := Issue("test-secret", "u-1", 24)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token")
	}

	sub, err := ParseSubject("Bearer "+tok, "test-secret")
	if err != nil {
		t.Fatalf("ParseSubject: %v", err)
	}
	if sub != "u-1" {
		t.Fatalf("subject mismatch: %s", sub)
	}

	// also accepted without the Bearer prefix
	if sub, err = ParseSubject(tok, "test-secret"); err != nil || sub != "u-1" {
		t.Fatalf("raw token parse: sub=%q err=%v", sub, err)
	}
}

func TestParseSubject_WrongSecret(t *testing.T) {
	tok, err := Issue("test-secret", "u-1", 24)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := ParseSubject("Bearer "+tok, "other-secret"); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseSubject_MissingHeader(t *testing.T) {
	if _, err := ParseSubject("", "test-secret"); err == nil {
		t.Fatalf("expected error for empty header")
	}
	if _, err := ParseSubject("Bearer ", "test-secret"); err == nil {
		t.Fatalf("expected error for empty token")
	}
	if _, err := ParseSubject("Bearer garbage", "test-secret"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestParseSubject_Expired(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "u-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseSubject("Bearer "+tok, "test-secret"); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestParseSubject_RejectsUnexpectedAlg(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"sub": "u-1"}).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseSubject("Bearer "+tok, "test-secret"); err == nil {
		t.Fatalf("expected error for non-HS256 token")
	}
}
