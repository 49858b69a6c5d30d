package sessionauth

import (
	"errors"
	"log/slog"
	"time"

	"github.com/inticky/sessionauth/storage"
)

// MonitorConfig tunes the session lifecycle monitor.
//
// MonitorConfig instances are intended to be configured during initialization
// and then treated as immutable unless documented otherwise.
type MonitorConfig struct {
	// ValidateInterval is the period of the recurring backend validation
	// tick. Default 5 minutes.
	ValidateInterval time.Duration
	// RefreshLead is how long before token expiry the one-shot refresh
	// fires. Zero means the 5-minute default; refresh-at-expiry is not a
	// supported configuration. Negative values are rejected.
	RefreshLead time.Duration
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
	Sink       AuditSink
}

// MetricsConfig controls the in-process metric counters.
type MetricsConfig struct {
	Enabled bool
}

// Config assembles a [Store].
//
// Config instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise.
type Config struct {
	// Service is the external auth collaborator. Required.
	Service AuthService
	// Storage is the durable client storage for the persisted session
	// subset. Defaults to an in-memory backend.
	Storage storage.Storage
	// Logger receives background warnings (storage write failures, silent
	// maintenance logouts). Defaults to slog.Default().
	Logger *slog.Logger

	Monitor MonitorConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

func (c *Config) normalize() error {
	if c.Service == nil {
		return errors.New("auth service is required")
	}
	if c.Storage == nil {
		c.Storage = storage.NewMemoryStorage()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Monitor.ValidateInterval <= 0 {
		c.Monitor.ValidateInterval = 5 * time.Minute
	}
	if c.Monitor.RefreshLead < 0 {
		return errors.New("refresh lead cannot be negative")
	}
	if c.Monitor.RefreshLead == 0 {
		c.Monitor.RefreshLead = 5 * time.Minute
	}
	if c.Audit.BufferSize <= 0 {
		c.Audit.BufferSize = 64
	}
	return nil
}
