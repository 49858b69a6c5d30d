package sessionauth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/inticky/sessionauth/token"
)

// Monitor keeps a session alive in the background: it validates the token on
// a recurring tick and refreshes it shortly before expiry. Its timers are
// keyed to the token identity — every token change (login, refresh, logout)
// cancels the previous token's timers before new ones are armed, so a
// superseded session is never hit by a stale timer.
//
// Maintenance failures are silent by design: they collapse into logout
// rather than a user-visible message.
type Monitor struct {
	store    *Store
	interval time.Duration
	lead     time.Duration
	logger   *slog.Logger
}

// NewMonitor creates a Monitor for store using the store's monitor
// configuration.
func NewMonitor(store *Store) *Monitor {
	return &Monitor{
		store:    store,
		interval: store.cfg.Monitor.ValidateInterval,
		lead:     store.cfg.Monitor.RefreshLead,
		logger:   store.logger,
	}
}

// Run blocks until ctx is cancelled, re-arming the per-token maintenance
// scope on every token change. Start it once after [Store.Initialize]:
//
//	go monitor.Run(ctx)
func (m *Monitor) Run(ctx context.Context) {
	tokens, stop := m.store.Watch()
	defer stop()

	cancel := m.arm(ctx, m.store.Token())
	for {
		select {
		case <-ctx.Done():
			cancel()
			return
		case tok := <-tokens:
			cancel()
			cancel = m.arm(ctx, tok)
		}
	}
}

// arm starts the maintenance goroutine for one token and returns its cancel
// func. An empty token arms nothing.
func (m *Monitor) arm(ctx context.Context, tok string) context.CancelFunc {
	if tok == "" {
		return func() {}
	}
	scope, cancel := context.WithCancel(ctx)
	go m.maintain(scope, tok)
	return cancel
}

func (m *Monitor) maintain(ctx context.Context, tok string) {
	// An already-expired token gets exactly one refresh attempt; failure is
	// an unconditional logout. This runs once per token, not on a timer.
	if token.IsExpired(tok) {
		if err := m.store.RefreshToken(ctx); err != nil && !errors.Is(err, ErrSessionSuperseded) {
			m.logger.Warn("expired session refresh failed, logging out", "error", err)
			m.store.Logout()
		}
		// Success produced a new token; this scope is superseded either way.
		return
	}

	refreshIn := time.Duration(max(token.MinutesUntilExpiry(tok)-int(m.lead.Minutes()), 0)) * time.Minute

	validate := time.NewTicker(m.interval)
	defer validate.Stop()
	refresh := time.NewTimer(refreshIn)
	defer refresh.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-validate.C:
			if !m.store.ValidateToken(ctx) {
				// validateToken already terminated the session.
				return
			}
		case <-refresh.C:
			if err := m.store.RefreshToken(ctx); err != nil && !errors.Is(err, ErrSessionSuperseded) {
				m.logger.Warn("pre-expiry refresh failed, logging out", "error", err)
				m.store.Logout()
			}
			return
		}
	}
}
