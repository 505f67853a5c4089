package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pingdeck/pingdeck/internal/errors"
)

const (
	// MinInterval is the shortest allowed probe interval. Anything faster
	// just hammers ping without improving the graph.
	MinInterval = 500 * time.Millisecond

	// MaxGraphWidth keeps the timeline within a reasonable terminal.
	MaxGraphWidth = 300
)

// Validate checks the config for problems that would break monitoring.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return errors.New(errors.ErrConfig,
			"No targets configured",
			"Add at least one target to "+ConfigFileName+", or run 'pingdeck init'")
	}

	seen := make(map[string]bool, len(c.Targets))
	for i, t := range c.Targets {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Target %d has no name", i+1),
				"Every target needs a unique name for display")
		}
		if seen[name] {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Duplicate target name: %q", name),
				"Target names must be unique so rows stay distinguishable")
		}
		seen[name] = true

		if strings.TrimSpace(t.Host) == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Target %q has no host", name),
				"Set host to an IP address or hostname to ping")
		}
	}

	if c.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Probe interval %s is too short", c.Interval),
			fmt.Sprintf("Use an interval of at least %s", MinInterval))
	}

	if c.Window <= 0 {
		return errors.New(errors.ErrConfig,
			"History window must be positive",
			"Set window to a duration like 10m")
	}

	if c.Window < c.Interval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("History window %s is shorter than the probe interval %s", c.Window, c.Interval),
			"The window must cover at least one probe interval")
	}

	if c.GraphWidth < 1 || c.GraphWidth > MaxGraphWidth {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Graph width %d is out of range", c.GraphWidth),
			fmt.Sprintf("Use a width between 1 and %d columns", MaxGraphWidth))
	}

	if c.ProbeTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			"Probe timeout must be positive",
			"Set probe_timeout to a duration like 1s")
	}

	return nil
}
