// Package probe measures round-trip latency to a host by shelling out to
// the system ping binary, one echo request per probe.
package probe

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/pingdeck/pingdeck/internal/errors"
)

// Prober measures the round-trip time to a host. Implementations must be
// safe for concurrent use; the monitor calls Probe from one goroutine per
// target.
type Prober interface {
	// Probe sends a single echo request to host and returns the elapsed
	// wall-clock time. A non-nil error means the probe failed or timed
	// out; the duration is meaningless in that case.
	Probe(ctx context.Context, host string) (time.Duration, error)
}

// PingProber shells out to the system ping binary.
type PingProber struct {
	// Timeout bounds a single probe. The process is killed if it runs
	// longer.
	Timeout time.Duration
}

// NewPingProber returns a PingProber with the given per-probe timeout.
func NewPingProber(timeout time.Duration) *PingProber {
	return &PingProber{Timeout: timeout}
}

// Probe runs `ping -c 1` against host and reports the wall-clock elapsed
// time. Output parsing is deliberately avoided; measuring around the
// process includes fork/exec overhead but stays portable across ping
// implementations.
func (p *PingProber) Probe(ctx context.Context, host string) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ping", pingArgs(host, p.Timeout)...)

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return 0, errors.New(errors.ErrProbe,
				fmt.Sprintf("Probe to %s timed out after %s", host, p.Timeout),
				"The host may be down or dropping ICMP")
		}
		return 0, errors.Wrap(err, fmt.Sprintf("Probe to %s failed", host))
	}

	return elapsed, nil
}

// pingArgs builds the ping arguments for a single echo request. The wait
// flag differs per platform: Linux -W takes seconds, macOS takes
// milliseconds.
func pingArgs(host string, timeout time.Duration) []string {
	args := []string{"-c", "1"}

	switch runtime.GOOS {
	case "darwin":
		args = append(args, "-W", strconv.FormatInt(timeout.Milliseconds(), 10))
	case "linux":
		secs := int64(timeout / time.Second)
		if secs < 1 {
			secs = 1
		}
		args = append(args, "-W", strconv.FormatInt(secs, 10))
	}

	return append(args, host)
}
