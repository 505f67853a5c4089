package monitor

import "time"

// Tier classifies a probe's round-trip latency.
type Tier int

const (
	TierGood Tier = iota
	TierFair
	TierPoor
	TierTimeout
)

// Latency boundaries between tiers. A boundary value falls in the slower
// tier: exactly 50ms is Fair, exactly 500ms is Timeout.
const (
	GoodBelow = 50 * time.Millisecond
	FairBelow = 150 * time.Millisecond
	PoorBelow = 500 * time.Millisecond
)

// Classify maps a probe result to a severity tier. ok reports whether the
// probe produced a latency at all; a failed or timed-out probe classifies
// as TierTimeout.
func Classify(latency time.Duration, ok bool) Tier {
	switch {
	case !ok:
		return TierTimeout
	case latency < GoodBelow:
		return TierGood
	case latency < FairBelow:
		return TierFair
	case latency < PoorBelow:
		return TierPoor
	default:
		return TierTimeout
	}
}

// String returns a human-readable tier label.
func (t Tier) String() string {
	switch t {
	case TierGood:
		return "good"
	case TierFair:
		return "fair"
	case TierPoor:
		return "poor"
	case TierTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Tier glyphs, from full circle (healthy) to empty circle (unreachable).
const (
	GlyphGood    = "●"
	GlyphFair    = "◐"
	GlyphPoor    = "◑"
	GlyphTimeout = "○"
)

// Glyph returns the symbol rendered for this tier in status rows and
// timeline columns.
func (t Tier) Glyph() string {
	switch t {
	case TierGood:
		return GlyphGood
	case TierFair:
		return GlyphFair
	case TierPoor:
		return GlyphPoor
	default:
		return GlyphTimeout
	}
}
