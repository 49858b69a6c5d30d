package sessionauth

import (
	"errors"
	"testing"
	"time"
)

func TestNewRequiresService(t *testing.T) {
	_, err := New(Config{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("error = %v, want ErrNotConfigured", err)
	}
}

func TestNewRejectsNegativeRefreshLead(t *testing.T) {
	_, err := New(Config{
		Service: &fakeService{},
		Monitor: MonitorConfig{RefreshLead: -time.Minute},
	})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("error = %v, want ErrNotConfigured", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{Service: &fakeService{}}
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Storage == nil {
		t.Fatal("storage default not applied")
	}
	if cfg.Logger == nil {
		t.Fatal("logger default not applied")
	}
	if cfg.Monitor.ValidateInterval != 5*time.Minute {
		t.Fatalf("validate interval = %v", cfg.Monitor.ValidateInterval)
	}
	if cfg.Monitor.RefreshLead != 5*time.Minute {
		t.Fatalf("refresh lead = %v", cfg.Monitor.RefreshLead)
	}
	if cfg.Audit.BufferSize != 64 {
		t.Fatalf("audit buffer = %d", cfg.Audit.BufferSize)
	}
}

func TestExplicitConfigValuesSurviveNormalize(t *testing.T) {
	cfg := Config{
		Service: &fakeService{},
		Monitor: MonitorConfig{ValidateInterval: time.Minute, RefreshLead: 2 * time.Minute},
		Audit:   AuditConfig{BufferSize: 8},
	}
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Monitor.ValidateInterval != time.Minute || cfg.Monitor.RefreshLead != 2*time.Minute {
		t.Fatalf("monitor config overwritten: %+v", cfg.Monitor)
	}
	if cfg.Audit.BufferSize != 8 {
		t.Fatalf("audit buffer overwritten: %d", cfg.Audit.BufferSize)
	}
}
