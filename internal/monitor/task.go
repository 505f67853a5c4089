package monitor

import (
	"context"
	"time"

	"github.com/pingdeck/pingdeck/internal/config"
	"github.com/pingdeck/pingdeck/internal/logger"
	"github.com/pingdeck/pingdeck/internal/probe"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// probeStagger spaces out ping process launches across tasks so startup
// does not fork every target's ping in the same instant.
const probeStagger = 50 * time.Millisecond

// Task probes a single target for the lifetime of the supervisor. Each
// iteration probes, classifies, appends to its private history, emits a
// whole-record Status, then sleeps for the poll interval.
type Task struct {
	target   config.Target
	prober   probe.Prober
	interval time.Duration
	history  *History
	out      chan<- Status
	limiter  *rate.Limiter
	log      logger.Logger
}

// Run loops until ctx is cancelled. Cancellation is the task's only exit
// condition and is a clean shutdown, never an error. A probe failure
// degrades to a TierTimeout sample; it does not stop the loop.
func (t *Task) Run(ctx context.Context) error {
	for {
		if t.limiter != nil {
			if err := t.limiter.Wait(ctx); err != nil {
				return nil
			}
		}

		latency, err := t.prober.Probe(ctx, t.target.Host)
		if ctx.Err() != nil {
			return nil
		}
		ok := err == nil
		if err != nil {
			t.log.Debug("probe %s (%s): %v", t.target.Name, t.target.Host, err)
		}

		now := time.Now()
		tier := Classify(latency, ok)
		t.history.Append(now, tier)

		status := Status{
			Name:       t.target.Name,
			Latency:    latency,
			HasLatency: ok,
			Tier:       tier,
			UpdatedAt:  now,
			History:    t.history.Snapshot(),
		}

		select {
		case t.out <- status:
		case <-ctx.Done():
			return nil
		}

		select {
		case <-time.After(t.interval):
		case <-ctx.Done():
			return nil
		}
	}
}

// Supervisor owns one Task per target plus the channel they all emit on.
// Start launches the tasks; Stop cancels them; Wait blocks until every
// task has exited and then closes the updates channel.
type Supervisor struct {
	tasks   []*Task
	updates chan Status
	cancel  context.CancelFunc
	group   *errgroup.Group
}

// NewSupervisor builds a supervisor for the given targets. The updates
// channel carries headroom per target so tasks never block on a send
// between display drains.
func NewSupervisor(targets []config.Target, prober probe.Prober, interval, window time.Duration, log logger.Logger) *Supervisor {
	if log == nil {
		log = logger.Default()
	}

	updates := make(chan Status, len(targets)*8)
	limiter := rate.NewLimiter(rate.Every(probeStagger), 1)

	tasks := make([]*Task, 0, len(targets))
	for _, target := range targets {
		tasks = append(tasks, &Task{
			target:   target,
			prober:   prober,
			interval: interval,
			history:  NewHistory(window),
			out:      updates,
			limiter:  limiter,
			log:      log,
		})
	}

	return &Supervisor{tasks: tasks, updates: updates}
}

// Start launches all tasks. Call at most once.
func (s *Supervisor) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)
	s.group = group

	for _, task := range s.tasks {
		task := task
		group.Go(func() error {
			return task.Run(ctx)
		})
	}
}

// Updates returns the channel tasks emit status snapshots on. Snapshots
// from a single target arrive in send order; no ordering holds across
// targets.
func (s *Supervisor) Updates() <-chan Status {
	return s.updates
}

// Stop signals all tasks to exit. An in-flight probe runs to completion;
// its bounded timeout caps the shutdown tail.
func (s *Supervisor) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Wait blocks until every task has exited, then closes the updates
// channel so drains observe the shutdown.
func (s *Supervisor) Wait() error {
	if s.group == nil {
		return nil
	}
	err := s.group.Wait()
	close(s.updates)
	return err
}
