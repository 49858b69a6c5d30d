package storage

import (
	"context"
	"errors"
)

// Storage key names, mirroring the browser local-storage layout the backend
// team documented for the web client.
const (
	KeyAuthToken     = "jwt_token"
	KeyUserData      = "user_data"
	KeyTenantID      = "tenant_id"
	KeyAuthenticated = "authenticated"
)

// ErrUnavailable is returned when a backend cannot be reached or read.
var ErrUnavailable = errors.New("session storage unavailable")

// Snapshot is the persisted subset of session state. User is the
// JSON-serialized user object exactly as the session store marshals it.
type Snapshot struct {
	Token         string `json:"jwt_token"`
	User          []byte `json:"user_data"`
	TenantID      string `json:"tenant_id"`
	Authenticated bool   `json:"authenticated"`
}

// Storage is durable client storage for one session. Save and Clear act on
// the snapshot as an atomic group from the caller's point of view.
//
// Implementations must tolerate concurrent reads; writes are serialized by
// the session store and are last-write-wins.
type Storage interface {
	Save(ctx context.Context, snap Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
	Clear(ctx context.Context) error
}
