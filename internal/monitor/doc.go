// Package monitor implements a real-time TUI dashboard for network latency.
//
// The dashboard probes a fixed set of named targets concurrently, classifies
// each round-trip time into a severity tier, and renders per-target status
// rows with a time-bucketed history timeline until the operator quits.
//
// # Architecture
//
// Probing and display are decoupled through a single channel:
//
//	Task (one per target) -> channel -> Aggregator -> Model -> View
//
// Each Task owns a private History buffer; every iteration it probes,
// classifies, appends, and emits a whole-record Status snapshot carrying a
// copy of its buffer. Nothing else is shared between goroutines, so no
// locks are needed.
//
// The display side uses the Bubble Tea framework (Model-Update-View). A
// tick fires every RedrawInterval; the Model drains all pending snapshots
// from the channel into the Aggregator and repaints. Redraw cadence is
// independent of probe cadence.
//
// # Key Components
//
//	Classify    - Pure mapping from optional latency to tier
//	History     - Time-windowed sample buffer, evicted on every append
//	Task        - Per-target probe loop, exits only on context cancel
//	Supervisor  - Launches tasks, owns the channel, joins on shutdown
//	Aggregator  - Drains snapshots, keyed whole-record replace per target
//	Timeline    - Buckets a sample history into fixed-width columns
//
// # Classification
//
// Boundaries fall in the slower tier:
//
//	● Good     < 50ms
//	◐ Fair     50-150ms
//	◑ Poor     150-500ms
//	○ Timeout  >= 500ms, or no reply
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	?           - Toggle help overlay
//	Esc         - Close help
package monitor
