// Package storage persists the durable subset of session state across process
// restarts: token, serialized user, tenant id, and the authenticated flag.
//
// # Backends
//
//   - [MemoryStorage] — process-local, for tests and ephemeral sessions.
//   - [FileStorage] — single JSON file with atomic replace, the desktop/CLI
//     analog of browser local storage.
//   - [RedisStorage] — one hash per client key, for server-rendered
//     front-ends that keep per-client session state out-of-process.
//
// # Write discipline
//
// Save and Clear operate on the whole snapshot as a group. The caller (the
// session store) writes through on every mutating action; transient state
// (loading, last error) never reaches this package.
//
// # What this package must NOT do
//
//   - Interpret token contents or user fields.
//   - Decide what is persisted — the snapshot shape is the contract.
//   - Import the root package or its siblings.
package storage
