// Package sessionauth implements the client-side authentication core of the
// InTicky ticketing front-end: session state with durable write-through
// persistence, JWT claim projections, a static role→permission catalog, a
// background session lifecycle monitor, and an HTTP route guard.
//
// The package is designed for front-end server workloads: Store methods are
// safe to call from multiple goroutines after construction through [New].
//
// # Architecture boundaries
//
// sessionauth is the public surface. It exposes [Store], [Monitor], [Config],
// and value types (User, Credentials, MetricsSnapshot, etc.). Claim decoding
// lives in token/, the permission catalog in permission/, persistence in
// storage/, and the HTTP collaborator in authclient/. Internal coordination —
// audit dispatch, metric counters — lives under internal/ and is never
// exported directly.
//
// # Trust boundary
//
// Every decision this package makes is advisory UX gating. Token signatures
// are not verified client-side and the route guard only prevents accidental
// UI exposure; authoritative enforcement happens server-side on every request.
//
// # What this package must NOT do
//
//   - Verify token signatures or hold signing keys.
//   - Expose storage backends or internal dispatchers in its public API.
//   - Keep package-level mutable state: every Store is an explicit instance.
package sessionauth
