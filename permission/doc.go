// Package permission holds the static role→permission catalog and the
// quantifier and role-hierarchy helpers used by session capability checks.
//
// # Catalog
//
// Four roles are defined (SYSTEM_ADMIN, TENANT_ADMIN, AGENT, USER), each
// mapped to its full permission set at compile time. The catalog is the
// single authoritative source for capability queries; permission lists
// embedded in backend user payloads are not consulted.
//
// # Architecture boundaries
//
// This package is pure constant data plus total functions over it. Unknown
// role names contribute no permissions and never fail.
//
// # What this package must NOT do
//
//   - Access the network, storage, or any mutable state.
//   - Import the root package, token, or storage.
//   - Treat its answers as a security boundary — enforcement is server-side.
package permission
