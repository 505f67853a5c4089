// Package testing provides probe mocks for testing the monitor without
// real network access or a ping binary.
package testing

import (
	"context"
	"sync"
	"time"
)

// Result is a canned probe outcome.
type Result struct {
	Latency time.Duration
	Err     error
}

// MockProber returns scripted results per host and records every call.
// Results for a host are consumed in order; when the script runs out, the
// last result repeats.
type MockProber struct {
	mu      sync.Mutex
	scripts map[string][]Result
	calls   map[string]int

	// Delay, if set, is slept before returning. Useful for exercising
	// context cancellation mid-probe.
	Delay time.Duration
}

// NewMockProber creates an empty MockProber. Hosts with no script report
// zero latency and no error.
func NewMockProber() *MockProber {
	return &MockProber{
		scripts: make(map[string][]Result),
		calls:   make(map[string]int),
	}
}

// Script sets the sequence of results for host, replacing any previous
// script.
func (m *MockProber) Script(host string, results ...Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripts[host] = results
}

// Probe returns the next scripted result for host.
func (m *MockProber) Probe(ctx context.Context, host string) (time.Duration, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.calls[host]
	m.calls[host] = n + 1

	script := m.scripts[host]
	if len(script) == 0 {
		return 0, nil
	}
	if n >= len(script) {
		n = len(script) - 1
	}
	return script[n].Latency, script[n].Err
}

// Calls reports how many times host has been probed.
func (m *MockProber) Calls(host string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[host]
}
