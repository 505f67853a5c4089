package monitor

import "time"

// History is a time-windowed sample buffer for a single target. Samples
// are appended in time order and evicted from the front once they age out
// of the retention window, so the buffer is bounded by time span rather
// than count and tolerates gaps longer than the poll interval.
//
// History is not safe for concurrent use. Each task owns its buffer
// exclusively and hands other goroutines copies via Snapshot.
type History struct {
	window  time.Duration
	samples []Sample
}

// NewHistory creates an empty buffer with the given retention window.
func NewHistory(window time.Duration) *History {
	return &History{window: window}
}

// Append adds a sample at the tail, then evicts every sample older than
// now minus the retention window. Eviction runs on every append so the
// time-span invariant holds at all observation points.
func (h *History) Append(now time.Time, tier Tier) {
	h.samples = append(h.samples, Sample{Time: now, Tier: tier})

	cutoff := now.Add(-h.window)
	i := 0
	for i < len(h.samples) && h.samples[i].Time.Before(cutoff) {
		i++
	}
	if i > 0 {
		h.samples = append(h.samples[:0], h.samples[i:]...)
	}
}

// Snapshot returns a copy of the buffer for cross-goroutine hand-off.
// Returns nil when empty.
func (h *History) Snapshot() []Sample {
	if len(h.samples) == 0 {
		return nil
	}
	out := make([]Sample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Len returns the number of retained samples.
func (h *History) Len() int {
	return len(h.samples)
}
