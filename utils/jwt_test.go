package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "pat@example.com", "patient", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, err := ExtractIdentityFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIdentityFromToken: %v", err)
	}
	if id.UserID != "user-1" || id.Email != "pat@example.com" || id.Role != "patient" {
		t.Errorf("identity = %+v", id)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "pat@example.com", "patient", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ExtractIdentityFromToken(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "pat@example.com", "patient", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ExtractIdentityFromToken(token + "x"); err == nil {
		t.Error("expected error for tampered token")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Error("hash of identical inputs differs")
	}
	if a == HashToken("other-token") {
		t.Error("hash of distinct inputs collides")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
