package sessionauth

import "errors"

var (
	// ErrNotConfigured is an exported constant or variable used by the session core.
	ErrNotConfigured = errors.New("session store not configured")
	// ErrNoToken is an exported constant or variable used by the session core.
	ErrNoToken = errors.New("no session token present")
	// ErrTokenInvalid is an exported constant or variable used by the session core.
	ErrTokenInvalid = errors.New("invalid session token")
	// ErrLoginFailed is an exported constant or variable used by the session core.
	ErrLoginFailed = errors.New("login failed")
	// ErrRefreshFailed is an exported constant or variable used by the session core.
	ErrRefreshFailed = errors.New("token refresh failed")
	// ErrSessionSuperseded is returned when an async result arrives after the
	// session generation it was issued under has been replaced; the result is
	// discarded without touching state.
	ErrSessionSuperseded = errors.New("session superseded")
)

// Fallback messages surfaced on the store when the auth collaborator's
// failure carries no message of its own.
const (
	loginFailedMessage   = "Login failed"
	refreshFailedMessage = "Token refresh failed"
)
