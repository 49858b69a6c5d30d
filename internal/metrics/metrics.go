package metrics

import "sync/atomic"

// MetricID identifies one counter slot.
type MetricID uint16

const (
	MetricLoginSuccess MetricID = iota
	MetricLoginFailure
	MetricLogout
	MetricForcedLogout
	MetricValidateSuccess
	MetricValidateFailure
	MetricRefreshSuccess
	MetricRefreshFailure
	MetricRehydrateSuccess
	MetricRehydrateFailure
	MetricStaleResultDiscarded

	MetricIDCount
)

// Config controls whether metric writes are recorded.
type Config struct {
	Enabled bool
}

// paddedCounter keeps each slot on its own cache line so concurrent
// increments of different metrics do not false-share.
type paddedCounter struct {
	value uint64
	_     [56]byte
}

// Metrics holds lock-free counters. A nil or disabled Metrics is a no-op.
type Metrics struct {
	enabled  bool
	counters [MetricIDCount]paddedCounter
}

// New creates a Metrics instance. When cfg.Enabled is false all operations
// are no-ops.
func New(cfg Config) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc increments one counter. Out-of-range IDs are ignored.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= MetricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Counters [MetricIDCount]uint64
}

// Snapshot returns a consistent-enough copy: each counter is read atomically,
// the set is not read under a global lock.
func (m *Metrics) Snapshot() Snapshot {
	var s Snapshot
	if m == nil || !m.enabled {
		return s
	}
	for i := range m.counters {
		s.Counters[i] = atomic.LoadUint64(&m.counters[i].value)
	}
	return s
}
