// Package otel provides OpenTelemetry metric exporter bindings for
// sessionauth counters.
//
// [NewOTelExporter] registers an Int64ObservableCounter instrument for each
// session metric. A single callback reads [sessionauth.Store.MetricsSnapshot]
// on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate store state.
package otel
