// Package prometheus provides Prometheus collectors for sessionauth metrics.
//
// [NewPrometheusExporter] accepts a [sessionauth.Store] and exposes an
// [http.Handler] that renders all session counters in Prometheus text
// exposition format. Counter names are prefixed sessionauth_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate store state.
package prometheus
