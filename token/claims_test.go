package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, claims *Claims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return raw
}

func TestDecodeProjections(t *testing.T) {
	raw := mintToken(t, &Claims{
		TenantID:    "t-42",
		Roles:       []string{"AGENT", "USER"},
		Permissions: []string{"TICKET_READ"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "agent@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if claims.Subject != "agent@example.com" {
		t.Fatalf("expected subject agent@example.com, got %q", claims.Subject)
	}
	if Subject(raw) != "agent@example.com" {
		t.Fatalf("Subject projection mismatch: %q", Subject(raw))
	}
	if TenantID(raw) != "t-42" {
		t.Fatalf("TenantID projection mismatch: %q", TenantID(raw))
	}
	if got := Roles(raw); len(got) != 2 || got[0] != "AGENT" {
		t.Fatalf("unexpected roles: %v", got)
	}
	if got := Permissions(raw); len(got) != 1 || got[0] != "TICKET_READ" {
		t.Fatalf("unexpected permissions: %v", got)
	}
	if IsExpired(raw) {
		t.Fatal("token with future exp reported expired")
	}
}

func TestExpiredTokenIsExpired(t *testing.T) {
	raw := mintToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Second)),
		},
	})
	if !IsExpired(raw) {
		t.Fatal("token with past exp not reported expired")
	}
	if got := MinutesUntilExpiry(raw); got != 0 {
		t.Fatalf("expected 0 minutes until expiry, got %d", got)
	}
}

func TestMalformedTokensFailClosedWithoutPanic(t *testing.T) {
	malformed := []string{
		"",
		"not-a-token",
		"a.b",
		"a.b.c",
		"!!!.@@@.###",
		"eyJhbGciOiJIUzI1NiJ9.%%%%.sig",
	}
	for _, raw := range malformed {
		if _, err := Decode(raw); err == nil {
			t.Fatalf("expected decode error for %q", raw)
		}
		if !IsExpired(raw) {
			t.Fatalf("undecodable token %q not reported expired", raw)
		}
		if MinutesUntilExpiry(raw) != 0 {
			t.Fatalf("undecodable token %q has nonzero expiry minutes", raw)
		}
		if Subject(raw) != "" || TenantID(raw) != "" {
			t.Fatalf("projections leaked values for %q", raw)
		}
		if len(Roles(raw)) != 0 || len(Permissions(raw)) != 0 {
			t.Fatalf("list projections leaked values for %q", raw)
		}
		if _, ok := ExpiresAt(raw); ok {
			t.Fatalf("ExpiresAt reported ok for %q", raw)
		}
	}
}

func TestMissingExpIsNotExpired(t *testing.T) {
	raw := mintToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user@example.com"},
	})
	if IsExpired(raw) {
		t.Fatal("token without exp reported expired")
	}
	if MinutesUntilExpiry(raw) != 0 {
		t.Fatal("token without exp should report 0 minutes until expiry")
	}
	if _, ok := ExpiresAt(raw); ok {
		t.Fatal("token without exp should not report an expiry instant")
	}
}

func TestMinutesUntilExpiryFloors(t *testing.T) {
	raw := mintToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(10*time.Minute + 30*time.Second)),
		},
	})
	if got := MinutesUntilExpiry(raw); got != 10 {
		t.Fatalf("expected 10 minutes until expiry, got %d", got)
	}
}
