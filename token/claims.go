package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a session token. The subject claim carries
// the user's email; role and permission names are plain string lists as issued
// by the backend auth service.
type Claims struct {
	TenantID    string   `json:"tenantId,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// Decode parses the payload segment of raw into [Claims]. The signature is not
// checked and no registered-claim validation runs; a malformed token is the
// only failure mode. Decode never panics.
func Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return claims, nil
}

// IsExpired reports whether the token's exp claim is in the past. A token that
// fails to decode is expired (fail-closed). A decodable token without an exp
// claim is not considered expired.
func IsExpired(raw string) bool {
	claims, err := Decode(raw)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Before(time.Now())
}

// ExpiresAt returns the token's expiry instant. The second return is false
// when the token does not decode or carries no exp claim.
func ExpiresAt(raw string) (time.Time, bool) {
	claims, err := Decode(raw)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// MinutesUntilExpiry returns floor((exp-now)/60) clamped to zero. Undecodable
// tokens and tokens without exp yield zero, so callers scheduling a refresh
// fire immediately rather than never.
func MinutesUntilExpiry(raw string) int {
	claims, err := Decode(raw)
	if err != nil || claims.ExpiresAt == nil {
		return 0
	}
	left := time.Until(claims.ExpiresAt.Time)
	if left < 0 {
		return 0
	}
	return int(left / time.Minute)
}

// Subject returns the sub claim (the user's email), or "" when the token does
// not decode.
func Subject(raw string) string {
	claims, err := Decode(raw)
	if err != nil {
		return ""
	}
	return claims.Subject
}

// TenantID returns the tenantId claim, or "" when the token does not decode.
func TenantID(raw string) string {
	claims, err := Decode(raw)
	if err != nil {
		return ""
	}
	return claims.TenantID
}

// Roles returns the roles claim. Decode failure yields an empty slice, never
// nil-panics downstream quantifiers.
func Roles(raw string) []string {
	claims, err := Decode(raw)
	if err != nil {
		return nil
	}
	return claims.Roles
}

// Permissions returns the permissions claim, empty on decode failure.
func Permissions(raw string) []string {
	claims, err := Decode(raw)
	if err != nil {
		return nil
	}
	return claims.Permissions
}
