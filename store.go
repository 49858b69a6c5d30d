package sessionauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	internalaudit "github.com/inticky/sessionauth/internal/audit"
	internalmetrics "github.com/inticky/sessionauth/internal/metrics"
	"github.com/inticky/sessionauth/storage"
	"github.com/inticky/sessionauth/token"
)

// APIError carries the backend's HTTP status and message for a failed auth
// call. The store surfaces Message to the user on interactive failures.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("auth service returned status %d: %s", e.StatusCode, e.Message)
}

// Store is the session state machine over {Anonymous, Authenticating,
// Authenticated, Error}. All mutating actions write the persisted subset of
// state through to durable storage in lockstep, so a restarted process can
// rehydrate via [Store.Initialize].
//
// Async action results are applied only when the session generation they
// were issued under is still current: a refresh success landing after a
// logout cannot resurrect authenticated state.
type Store struct {
	cfg     Config
	svc     AuthService
	storage storage.Storage
	logger  *slog.Logger
	metrics *internalmetrics.Metrics
	audit   *internalaudit.Dispatcher

	mu            sync.Mutex
	user          *User
	token         string
	authenticated bool
	loading       bool
	lastErr       string
	generation    uint64

	watchers    map[int]chan string
	nextWatcher int
}

// New creates a Store from cfg. The store starts Anonymous; call
// [Store.Initialize] to rehydrate a persisted session.
func New(cfg Config) (*Store, error) {
	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}

	return &Store{
		cfg:     cfg,
		svc:     cfg.Service,
		storage: cfg.Storage,
		logger:  cfg.Logger,
		metrics: internalmetrics.New(internalmetrics.Config{Enabled: cfg.Metrics.Enabled}),
		audit: internalaudit.NewDispatcher(internalaudit.Config{
			Enabled:    cfg.Audit.Enabled,
			BufferSize: cfg.Audit.BufferSize,
			DropIfFull: cfg.Audit.DropIfFull,
		}, cfg.Audit.Sink),
		watchers: make(map[int]chan string),
	}, nil
}

// Close flushes and stops the audit dispatcher. The store remains usable for
// synchronous reads afterwards; no further events are emitted.
func (s *Store) Close() {
	s.audit.Close()
}

// Initialize rehydrates the persisted session, then validates it against the
// backend. Any invalid, undecodable, or missing persisted state collapses to
// Anonymous. The returned error reports storage trouble only; an invalid
// session is not an error.
func (s *Store) Initialize(ctx context.Context) error {
	snap, err := s.storage.Load(ctx)
	if err != nil {
		s.metrics.Inc(internalmetrics.MetricRehydrateFailure)
		s.logger.Warn("session rehydrate failed", "error", err)
		return fmt.Errorf("rehydrate session: %w", err)
	}
	if snap == nil || snap.Token == "" || len(snap.User) == 0 {
		// Clear partial leftovers, if any.
		s.Logout()
		return nil
	}

	var user User
	if err := json.Unmarshal(snap.User, &user); err != nil {
		s.metrics.Inc(internalmetrics.MetricRehydrateFailure)
		s.emitAudit(ctx, internalaudit.EventRehydrate, false, "", snap.TenantID, err, nil)
		s.Logout()
		return nil
	}

	s.mu.Lock()
	s.user = &user
	s.token = snap.Token
	s.authenticated = snap.Authenticated
	s.mu.Unlock()

	if !s.ValidateToken(ctx) {
		s.metrics.Inc(internalmetrics.MetricRehydrateFailure)
		s.emitAudit(ctx, internalaudit.EventRehydrate, false, user.ID, user.TenantID, nil, nil)
		return nil
	}

	s.metrics.Inc(internalmetrics.MetricRehydrateSuccess)
	s.emitAudit(ctx, internalaudit.EventRehydrate, true, user.ID, user.TenantID, nil, nil)
	return nil
}

// Login authenticates against the auth collaborator. On success the session
// becomes Authenticated and the persisted subset is written through. On
// failure the session is cleared, the collaborator's message (fallback
// "Login failed") is recorded for display, and the error is returned so a
// form can show inline feedback.
func (s *Store) Login(ctx context.Context, creds Credentials) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	gen := s.generation
	s.mu.Unlock()

	resp, err := s.svc.Login(ctx, creds)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		s.metrics.Inc(internalmetrics.MetricStaleResultDiscarded)
		return ErrSessionSuperseded
	}
	s.loading = false

	if err != nil {
		s.user = nil
		s.token = ""
		s.authenticated = false
		s.lastErr = failureMessage(err, loginFailedMessage)
		s.generation++
		s.clearStorageLocked(ctx)
		s.notifyLocked()
		s.metrics.Inc(internalmetrics.MetricLoginFailure)
		s.emitAudit(ctx, internalaudit.EventLogin, false, "", "", err, map[string]string{"email": creds.Email})
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	user := resp.User
	s.user = &user
	s.token = resp.Token
	s.authenticated = true
	s.lastErr = ""
	s.generation++
	s.persistLocked(ctx)
	s.notifyLocked()
	s.metrics.Inc(internalmetrics.MetricLoginSuccess)
	s.emitAudit(ctx, internalaudit.EventLogin, true, user.ID, user.TenantID, nil, nil)
	return nil
}

// Logout clears the session synchronously and unconditionally: state resets
// to Anonymous and the persisted group is cleared. Logout never fails and is
// idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutLocked(context.Background(), internalaudit.EventLogout, internalmetrics.MetricLogout, nil)
}

// ValidateToken checks the current session against the backend. Without a
// token the session is forced Anonymous. An undecodable token, an invalid
// verdict, or any collaborator error fails closed into logout. Background
// callers get no user-visible message; the user simply finds themselves
// logged out.
func (s *Store) ValidateToken(ctx context.Context) bool {
	s.mu.Lock()
	tok := s.token
	gen := s.generation
	s.mu.Unlock()

	if tok == "" {
		s.mu.Lock()
		if s.generation == gen {
			s.authenticated = false
		}
		s.mu.Unlock()
		return false
	}

	// Fail closed on garbage before spending a network round-trip.
	if _, err := token.Decode(tok); err != nil {
		s.metrics.Inc(internalmetrics.MetricValidateFailure)
		s.forceLogout(ctx, gen, fmt.Errorf("%w: %v", ErrTokenInvalid, err))
		return false
	}

	result, err := s.svc.ValidateToken(ctx, tok)
	if err != nil || result == nil || !result.Valid {
		s.metrics.Inc(internalmetrics.MetricValidateFailure)
		s.forceLogout(ctx, gen, err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		s.metrics.Inc(internalmetrics.MetricStaleResultDiscarded)
		return false
	}
	s.authenticated = true
	s.lastErr = ""
	s.persistLocked(ctx)
	s.metrics.Inc(internalmetrics.MetricValidateSuccess)
	s.emitAudit(ctx, internalaudit.EventValidate, true, s.userIDLocked(), s.tenantIDLocked(), nil, nil)
	return true
}

// RefreshToken exchanges the current token for a fresh one. On success the
// user and token are replaced and persisted. On failure the session is
// cleared and the error returned; the caller (typically the lifecycle
// monitor) decides whether to force a full logout.
func (s *Store) RefreshToken(ctx context.Context) error {
	s.mu.Lock()
	tok := s.token
	gen := s.generation
	if tok == "" {
		s.mu.Unlock()
		return ErrNoToken
	}
	s.loading = true
	s.mu.Unlock()

	resp, err := s.svc.RefreshToken(ctx, tok)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		s.metrics.Inc(internalmetrics.MetricStaleResultDiscarded)
		return ErrSessionSuperseded
	}
	s.loading = false

	if err != nil {
		s.user = nil
		s.token = ""
		s.authenticated = false
		s.lastErr = failureMessage(err, refreshFailedMessage)
		s.generation++
		s.clearStorageLocked(ctx)
		s.notifyLocked()
		s.metrics.Inc(internalmetrics.MetricRefreshFailure)
		s.emitAudit(ctx, internalaudit.EventRefresh, false, "", "", err, nil)
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	user := resp.User
	s.user = &user
	s.token = resp.Token
	s.authenticated = true
	s.lastErr = ""
	s.generation++
	s.persistLocked(ctx)
	s.notifyLocked()
	s.metrics.Inc(internalmetrics.MetricRefreshSuccess)
	s.emitAudit(ctx, internalaudit.EventRefresh, true, user.ID, user.TenantID, nil, nil)
	return nil
}

// Watch returns a channel that receives the session token after every token
// change (login, refresh, logout), plus a cancel func. Notifications
// coalesce under backpressure: a slow receiver always sees the latest value.
func (s *Store) Watch() (<-chan string, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextWatcher
	s.nextWatcher++
	ch := make(chan string, 8)
	s.watchers[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, id)
	}
}

// forceLogout collapses the session unless another action already superseded
// the generation the caller observed.
func (s *Store) forceLogout(ctx context.Context, gen uint64, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		s.metrics.Inc(internalmetrics.MetricStaleResultDiscarded)
		return
	}
	s.logoutLocked(ctx, internalaudit.EventForcedLogout, internalmetrics.MetricForcedLogout, cause)
}

func (s *Store) logoutLocked(ctx context.Context, event string, metric internalmetrics.MetricID, cause error) {
	userID := s.userIDLocked()
	tenantID := s.tenantIDLocked()

	s.generation++
	s.user = nil
	s.token = ""
	s.authenticated = false
	s.loading = false
	s.lastErr = ""
	s.clearStorageLocked(ctx)
	s.notifyLocked()
	s.metrics.Inc(metric)
	s.emitAudit(ctx, event, true, userID, tenantID, cause, nil)
}

func (s *Store) persistLocked(ctx context.Context) {
	userJSON, err := json.Marshal(s.user)
	if err != nil {
		s.logger.Warn("session user encode failed", "error", err)
		return
	}
	snap := storage.Snapshot{
		Token:         s.token,
		User:          userJSON,
		TenantID:      s.tenantIDLocked(),
		Authenticated: s.authenticated,
	}
	if err := s.storage.Save(context.WithoutCancel(ctx), snap); err != nil {
		s.logger.Warn("session persist failed", "error", err)
	}
}

func (s *Store) clearStorageLocked(ctx context.Context) {
	if err := s.storage.Clear(context.WithoutCancel(ctx)); err != nil {
		s.logger.Warn("session storage clear failed", "error", err)
	}
}

func (s *Store) notifyLocked() {
	for _, ch := range s.watchers {
		select {
		case ch <- s.token:
		default:
			// Full buffer: drop the oldest value and retry so the
			// receiver observes the latest token.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s.token:
			default:
			}
		}
	}
}

func (s *Store) emitAudit(ctx context.Context, eventType string, success bool, userID, tenantID string, cause error, meta map[string]string) {
	event := internalaudit.Event{
		EventType: eventType,
		UserID:    userID,
		TenantID:  tenantID,
		Success:   success,
		Metadata:  meta,
	}
	if cause != nil {
		event.Error = cause.Error()
	}
	s.audit.Emit(context.WithoutCancel(ctx), event)
}

func (s *Store) userIDLocked() string {
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

func (s *Store) tenantIDLocked() string {
	if s.user == nil {
		return ""
	}
	return s.user.TenantID
}

func failureMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
