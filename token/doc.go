// Package token decodes session-token claims for client-side capability checks
// without verifying signatures.
//
// # Trust boundary
//
// The backend is the only party that verifies token signatures. Everything this
// package reads is advisory: it gates UI exposure and schedules refreshes, it is
// never an authorization decision. Servers must re-validate every request.
//
// # Architecture boundaries
//
// This package is a pure parser over the three-segment token structure
// (header.payload.signature) and only ever reads the payload.
//
// # What this package must NOT do
//
//   - Verify signatures or manage signing keys.
//   - Perform network I/O.
//   - Panic on malformed input — every function degrades to a zero value.
package token
