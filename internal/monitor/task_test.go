package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingdeck/pingdeck/internal/config"
	"github.com/pingdeck/pingdeck/internal/errors"
	"github.com/pingdeck/pingdeck/internal/logger"
	probetest "github.com/pingdeck/pingdeck/internal/probe/testing"
)

func collectStatuses(t *testing.T, ch <-chan Status, n int) []Status {
	t.Helper()
	out := make([]Status, 0, n)
	timeout := time.After(5 * time.Second)
	for len(out) < n {
		select {
		case st := <-ch:
			out = append(out, st)
		case <-timeout:
			t.Fatalf("timed out waiting for %d statuses, got %d", n, len(out))
		}
	}
	return out
}

func TestTaskEmitsClassifiedStatuses(t *testing.T) {
	prober := probetest.NewMockProber()
	prober.Script("host-a",
		probetest.Result{Latency: 30 * time.Millisecond},
		probetest.Result{Latency: 200 * time.Millisecond},
		probetest.Result{Err: errors.New(errors.ErrProbe, "unreachable", "")},
	)

	out := make(chan Status, 8)
	task := &Task{
		target:   config.Target{Name: "A", Host: "host-a"},
		prober:   prober,
		interval: 10 * time.Millisecond,
		history:  NewHistory(time.Minute),
		out:      out,
		log:      logger.Noop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- task.Run(ctx) }()

	statuses := collectStatuses(t, out, 3)
	cancel()

	// Single-producer ordering: snapshots arrive in probe order
	assert.Equal(t, TierGood, statuses[0].Tier)
	assert.True(t, statuses[0].HasLatency)
	assert.Equal(t, 30*time.Millisecond, statuses[0].Latency)

	assert.Equal(t, TierPoor, statuses[1].Tier)

	assert.Equal(t, TierTimeout, statuses[2].Tier)
	assert.False(t, statuses[2].HasLatency)

	// History snapshots grow with each iteration
	assert.Len(t, statuses[0].History, 1)
	assert.Len(t, statuses[1].History, 2)
	assert.Len(t, statuses[2].History, 3)

	// Cancellation is a clean exit, not an error
	require.NoError(t, <-done)
}

func TestTaskExitsCleanlyMidSleep(t *testing.T) {
	prober := probetest.NewMockProber()
	prober.Script("host-a", probetest.Result{Latency: 10 * time.Millisecond})

	out := make(chan Status, 1)
	task := &Task{
		target:   config.Target{Name: "A", Host: "host-a"},
		prober:   prober,
		interval: time.Hour, // park the task in its sleep
		history:  NewHistory(time.Minute),
		out:      out,
		log:      logger.Noop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- task.Run(ctx) }()

	collectStatuses(t, out, 1)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("task did not exit after cancellation")
	}
}

func TestSupervisorRunsOneTaskPerTarget(t *testing.T) {
	prober := probetest.NewMockProber()
	prober.Script("host-a", probetest.Result{Latency: 20 * time.Millisecond})
	prober.Script("host-b", probetest.Result{Err: errors.New(errors.ErrProbe, "down", "")})

	targets := []config.Target{
		{Name: "A", Host: "host-a"},
		{Name: "B", Host: "host-b"},
	}

	sup := NewSupervisor(targets, prober, 10*time.Millisecond, time.Minute, logger.Noop())
	sup.Start(context.Background())

	// Both targets report; order across targets is not guaranteed
	seen := make(map[string]Status)
	timeout := time.After(5 * time.Second)
	for len(seen) < 2 {
		select {
		case st := <-sup.Updates():
			seen[st.Name] = st
		case <-timeout:
			t.Fatalf("timed out, saw %d targets", len(seen))
		}
	}

	assert.Equal(t, TierGood, seen["A"].Tier)
	assert.Equal(t, TierTimeout, seen["B"].Tier)

	sup.Stop()
	require.NoError(t, sup.Wait())

	// Wait closed the channel; a drain observes the shutdown
	agg := NewAggregator(targets, logger.Noop())
	agg.Drain(sup.Updates())
	_, open := <-sup.Updates()
	assert.False(t, open)
}

func TestSupervisorStopUnblocksBufferedTasks(t *testing.T) {
	prober := probetest.NewMockProber()
	targets := []config.Target{{Name: "A", Host: "host-a"}}

	sup := NewSupervisor(targets, prober, time.Millisecond, time.Minute, logger.Noop())
	sup.Start(context.Background())

	// Let the task fill some of the channel buffer without a reader
	time.Sleep(50 * time.Millisecond)

	sup.Stop()

	done := make(chan error, 1)
	go func() { done <- sup.Wait() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not shut down")
	}
}
