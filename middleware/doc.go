// Package middleware exposes the HTTP route guard that gates handlers on the
// session held by a [sessionauth.Store].
//
// # Guards
//
//   - [Guard] — declarative gate built from [Options].
//   - [Admin], [SystemAdmin], [TenantAdmin], [Agent] — preset role gates.
//
// A guard evaluates, in order: session still loading (503 + Retry-After),
// authentication (302 to the fallback path carrying the original URL in the
// "from" query parameter), required roles (403), required permissions (403).
// Requests that pass every check reach the wrapped handler unchanged.
//
// # Architecture boundaries
//
// This package translates session state into HTTP redirect-or-deny semantics
// for a better first paint. It is a UX convenience, not a security boundary —
// the backing API authorizes every request independently, so a bypassed guard
// exposes nothing.
//
// # What this package must NOT do
//
//   - Parse or validate tokens (the store and monitor own token state).
//   - Trigger login, logout, or refresh transitions.
//   - Serve as the sole authorization check for any resource.
package middleware
