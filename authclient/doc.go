// Package authclient implements [sessionauth.AuthService] over the backend's
// HTTP auth endpoints.
//
// # Endpoints
//
//   - POST /auth/login — credentials in, token + user out.
//   - POST /auth/validate — bearer token in, validity verdict out.
//   - POST /auth/refresh — bearer token in, replacement token + user out.
//   - GET /auth/me — bearer token in, current user out.
//
// Non-2xx responses are decoded into [sessionauth.APIError] so the store can
// surface the backend's message verbatim.
//
// # Architecture boundaries
//
// This package is transport only. It does not hold session state, retry, or
// interpret verdicts — the store owns all of that.
//
// # What this package must NOT do
//
//   - Cache tokens or users.
//   - Decode token claims (package token owns claim inspection).
//   - Retry failed requests.
package authclient
