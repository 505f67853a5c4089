package monitor

import (
	"github.com/pingdeck/pingdeck/internal/config"
	"github.com/pingdeck/pingdeck/internal/logger"
)

// Aggregator is the single consumer of task snapshots. It merges them
// into display state keyed by target name, replacing records wholesale so
// last write wins per target.
type Aggregator struct {
	order    []string
	statuses map[string]Status
	log      logger.Logger
}

// NewAggregator seeds one record per target with TierTimeout and no
// latency, representing "not yet probed". Display order follows the
// configured target order.
func NewAggregator(targets []config.Target, log logger.Logger) *Aggregator {
	if log == nil {
		log = logger.Default()
	}

	a := &Aggregator{
		order:    make([]string, 0, len(targets)),
		statuses: make(map[string]Status, len(targets)),
		log:      log,
	}
	for _, t := range targets {
		a.order = append(a.order, t.Name)
		a.statuses[t.Name] = Status{Name: t.Name, Tier: TierTimeout}
	}
	return a
}

// Apply replaces the record for the snapshot's target. A snapshot whose
// name matches no known target is dropped; the fixed target set makes
// that unexpected but it must never crash the display.
func (a *Aggregator) Apply(status Status) {
	if _, ok := a.statuses[status.Name]; !ok {
		a.log.Debug("dropping snapshot for unknown target %q", status.Name)
		return
	}
	a.statuses[status.Name] = status
}

// Drain non-blockingly consumes every snapshot currently available on ch
// and applies each. It returns the number applied, zero when the channel
// is empty or closed. Draining to empty, rather than one receive per
// redraw, keeps the display current even when probes outpace redraws.
func (a *Aggregator) Drain(ch <-chan Status) int {
	n := 0
	for {
		select {
		case status, ok := <-ch:
			if !ok {
				return n
			}
			a.Apply(status)
			n++
		default:
			return n
		}
	}
}

// Statuses returns the current records in configured target order.
func (a *Aggregator) Statuses() []Status {
	out := make([]Status, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.statuses[name])
	}
	return out
}

// Get returns the record for a target by name.
func (a *Aggregator) Get(name string) (Status, bool) {
	status, ok := a.statuses[name]
	return status, ok
}
