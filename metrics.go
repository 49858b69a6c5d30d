package sessionauth

import (
	internalmetrics "github.com/inticky/sessionauth/internal/metrics"
)

// MetricID identifies a specific counter in the in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess is an exported constant or variable used by the session core.
	MetricLoginSuccess = internalmetrics.MetricLoginSuccess
	// MetricLoginFailure is an exported constant or variable used by the session core.
	MetricLoginFailure = internalmetrics.MetricLoginFailure
	// MetricLogout is an exported constant or variable used by the session core.
	MetricLogout = internalmetrics.MetricLogout
	// MetricForcedLogout is an exported constant or variable used by the session core.
	MetricForcedLogout = internalmetrics.MetricForcedLogout
	// MetricValidateSuccess is an exported constant or variable used by the session core.
	MetricValidateSuccess = internalmetrics.MetricValidateSuccess
	// MetricValidateFailure is an exported constant or variable used by the session core.
	MetricValidateFailure = internalmetrics.MetricValidateFailure
	// MetricRefreshSuccess is an exported constant or variable used by the session core.
	MetricRefreshSuccess = internalmetrics.MetricRefreshSuccess
	// MetricRefreshFailure is an exported constant or variable used by the session core.
	MetricRefreshFailure = internalmetrics.MetricRefreshFailure
	// MetricRehydrateSuccess is an exported constant or variable used by the session core.
	MetricRehydrateSuccess = internalmetrics.MetricRehydrateSuccess
	// MetricRehydrateFailure is an exported constant or variable used by the session core.
	MetricRehydrateFailure = internalmetrics.MetricRehydrateFailure
	// MetricStaleResultDiscarded is an exported constant or variable used by the session core.
	MetricStaleResultDiscarded = internalmetrics.MetricStaleResultDiscarded
)

// MetricsSnapshot is a point-in-time copy of all session metrics, keyed for
// the exporters under metrics/export/.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// MetricsSnapshot returns the current counter values. When metrics are
// disabled the map is empty.
func (s *Store) MetricsSnapshot() MetricsSnapshot {
	snap := s.metrics.Snapshot()
	out := MetricsSnapshot{Counters: make(map[MetricID]uint64, len(snap.Counters))}
	for id, value := range snap.Counters {
		if value == 0 {
			continue
		}
		out.Counters[MetricID(id)] = value
	}
	return out
}

// AuditDropped reports how many audit events the async dispatcher discarded
// under backpressure.
func (s *Store) AuditDropped() uint64 {
	return s.audit.Dropped()
}
