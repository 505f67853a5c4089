package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppendAndSnapshot(t *testing.T) {
	h := NewHistory(10 * time.Minute)
	assert.Equal(t, 0, h.Len())
	assert.Nil(t, h.Snapshot())

	base := time.Now()
	h.Append(base, TierGood)
	h.Append(base.Add(2*time.Second), TierFair)

	require.Equal(t, 2, h.Len())

	snap := h.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, TierGood, snap[0].Tier)
	assert.Equal(t, TierFair, snap[1].Tier)
	assert.True(t, snap[0].Time.Before(snap[1].Time))
}

func TestHistorySnapshotIsCopy(t *testing.T) {
	h := NewHistory(10 * time.Minute)
	base := time.Now()
	h.Append(base, TierGood)

	snap := h.Snapshot()
	h.Append(base.Add(time.Second), TierPoor)

	// Mutating the buffer after the snapshot must not change the copy
	require.Len(t, snap, 1)
	assert.Equal(t, TierGood, snap[0].Tier)

	snap[0].Tier = TierTimeout
	fresh := h.Snapshot()
	assert.Equal(t, TierGood, fresh[0].Tier)
}

func TestHistoryEvictsOldSamples(t *testing.T) {
	window := 10 * time.Minute
	h := NewHistory(window)

	base := time.Now()
	h.Append(base, TierGood)
	h.Append(base.Add(5*time.Minute), TierGood)

	// This append pushes the first sample out of the window
	h.Append(base.Add(11*time.Minute), TierFair)

	snap := h.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, base.Add(5*time.Minute), snap[0].Time)
	assert.Equal(t, base.Add(11*time.Minute), snap[1].Time)
}

func TestHistoryTimeSpanInvariant(t *testing.T) {
	// Every sample remaining after an append is within the window of
	// that append's timestamp, for any append sequence.
	window := 10 * time.Minute
	h := NewHistory(window)

	base := time.Now()
	gaps := []time.Duration{
		0,
		2 * time.Second,
		2 * time.Second,
		30 * time.Minute, // long stall
		2 * time.Second,
		9 * time.Minute,
		3 * time.Minute,
	}

	ts := base
	for _, gap := range gaps {
		ts = ts.Add(gap)
		h.Append(ts, TierGood)

		cutoff := ts.Add(-window)
		for _, s := range h.Snapshot() {
			assert.False(t, s.Time.Before(cutoff),
				"sample at %v is older than window cutoff %v", s.Time, cutoff)
		}
	}
}

func TestHistoryBoundedBySustainedAppends(t *testing.T) {
	// 15 minutes of 2s-interval appends under a 10-minute window must
	// never retain more than the trailing 10 minutes worth.
	window := 10 * time.Minute
	interval := 2 * time.Second
	h := NewHistory(window)

	maxSamples := int(window/interval) + 1

	ts := time.Now()
	total := int(15 * time.Minute / interval)
	for i := 0; i < total; i++ {
		h.Append(ts, TierGood)
		assert.LessOrEqual(t, h.Len(), maxSamples)
		ts = ts.Add(interval)
	}

	// After 15 minutes the buffer holds roughly the trailing window
	assert.Greater(t, h.Len(), maxSamples/2)
}
