package sessionauth

import (
	"context"
	"io"
	"time"

	internalaudit "github.com/inticky/sessionauth/internal/audit"
)

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	// StatusActive is an exported constant or variable used by the session core.
	StatusActive UserStatus = "ACTIVE"
	// StatusInactive is an exported constant or variable used by the session core.
	StatusInactive UserStatus = "INACTIVE"
	// StatusSuspended is an exported constant or variable used by the session core.
	StatusSuspended UserStatus = "SUSPENDED"
)

// Permission is a backend permission entity as embedded in user payloads.
// Capability queries do NOT consult these; the static catalog in
// package permission is authoritative (see DESIGN.md).
type Permission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Resource    string    `json:"resource,omitempty"`
	Action      string    `json:"action,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Role is a backend role entity. Name is one of the catalog's role names in
// practice, though the set is open in principle.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	TenantID    string       `json:"tenantId"`
	Permissions []Permission `json:"permissions"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// User is the account model sourced from the backend on login/refresh and
// owned by the Store while logged in.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Status    UserStatus `json:"status"`
	TenantID  string     `json:"tenantId"`
	Roles     []Role     `json:"roles"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// RoleNames returns the names of the user's roles, order-preserving.
func (u *User) RoleNames() []string {
	if u == nil {
		return nil
	}
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}

// FullName joins first and last names with a single space.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by [AuthService.Login] and
// [AuthService.RefreshToken].
type LoginResponse struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ValidationResult is returned by [AuthService.ValidateToken].
type ValidationResult struct {
	Valid    bool   `json:"valid"`
	Email    string `json:"email,omitempty"`
	TenantID string `json:"tenantId,omitempty"`
}

// AuthService is the external auth collaborator consumed by [Store]. The
// default implementation is authclient.Client; tests supply fakes.
//
// All methods must honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (*LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (*ValidationResult, error)
	RefreshToken(ctx context.Context, token string) (*LoginResponse, error)
}

// AuditEvent is a structured audit record emitted by the store and monitor.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the store's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
