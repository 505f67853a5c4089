package monitor

import "time"

// Cell is one column of a rendered timeline.
type Cell struct {
	Tier Tier

	// Filled reports whether any sample landed in this column. An
	// unfilled cell renders as a placeholder.
	Filled bool
}

// Timeline buckets samples into width columns covering the window that
// ends at now. Each sample maps to the column for its time bucket; later
// samples landing in the same column overwrite earlier ones, so each
// column shows the most recent tier in that bucket. Samples older than
// the window, and boundary samples that round onto the right edge, are
// dropped.
//
// Rendering is pure: the same samples, width, window, and now always
// produce the same cells.
func Timeline(samples []Sample, width int, window time.Duration, now time.Time) []Cell {
	if width <= 0 {
		return nil
	}

	cells := make([]Cell, width)
	if window <= 0 {
		return cells
	}

	start := now.Add(-window)
	perColumn := window / time.Duration(width)
	if perColumn <= 0 {
		return cells
	}

	for _, s := range samples {
		if s.Time.Before(start) {
			continue
		}
		col := int(s.Time.Sub(start) / perColumn)
		if col < 0 || col >= width {
			continue
		}
		cells[col] = Cell{Tier: s.Tier, Filled: true}
	}

	return cells
}
