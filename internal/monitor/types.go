package monitor

import "time"

// Sample is one classified probe result. Immutable once created; owned by
// the producing task's History and never shared across targets.
type Sample struct {
	Time time.Time
	Tier Tier
}

// Status is the latest materialized view of one target. A task builds a
// fresh Status each iteration and sends it whole; the aggregator replaces
// its record wholesale so readers never see a torn mix of fields.
type Status struct {
	// Name is the target's display name, the join key between tasks and
	// the aggregator.
	Name string

	// Latency is the most recent round-trip time. Only meaningful when
	// HasLatency is true; a timed-out probe leaves it zero.
	Latency    time.Duration
	HasLatency bool

	Tier Tier

	// UpdatedAt is when the probe behind this status completed.
	UpdatedAt time.Time

	// History is a snapshot copy of the target's sample buffer, ordered
	// by time ascending.
	History []Sample
}
