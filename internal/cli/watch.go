package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/pingdeck/pingdeck/internal/config"
	"github.com/pingdeck/pingdeck/internal/errors"
	"github.com/pingdeck/pingdeck/internal/logger"
	"github.com/pingdeck/pingdeck/internal/monitor"
	"github.com/pingdeck/pingdeck/internal/probe"
)

// watchOptions holds the dashboard invocation settings after flag parsing.
type watchOptions struct {
	ConfigPath   string
	Targets      string
	Interval     string
	Window       string
	Width        int
	ProbeTimeout string
	Once         bool
}

func watchOptionsFromFlags() watchOptions {
	return watchOptions{
		ConfigPath:   configFlag,
		Targets:      watchTargetsFlag,
		Interval:     watchIntervalFlag,
		Window:       watchWindowFlag,
		Width:        watchWidthFlag,
		ProbeTimeout: watchProbeTimeoutFlag,
		Once:         watchOnceFlag,
	}
}

// watchCommand loads config, applies flag overrides, and runs either the
// TUI dashboard or a single plain-text snapshot.
func watchCommand(opts watchOptions) error {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return err
	}

	if err := applyWatchOverrides(cfg, opts); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	prober := probe.NewPingProber(cfg.ProbeTimeout)

	if opts.Once {
		return watchOnce(cfg, prober)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrExec,
			"Standard output is not a terminal",
			"The dashboard needs a TTY; use --once for a plain snapshot")
	}

	sup := monitor.NewSupervisor(cfg.Targets, prober, cfg.Interval, cfg.Window, logger.Default())
	sup.Start(context.Background())

	model := monitor.NewModel(cfg, sup.Updates())
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()

	// Join all tasks before returning; an in-flight probe runs out its
	// bounded timeout.
	sup.Stop()
	if werr := sup.Wait(); err == nil {
		err = werr
	}

	return err
}

// watchOnce probes every target once and prints a plain snapshot, for
// piping or scripting without a TTY.
func watchOnce(cfg *config.Config, prober probe.Prober) error {
	ctx := context.Background()

	type result struct {
		target  config.Target
		latency time.Duration
		ok      bool
	}

	results := make([]result, len(cfg.Targets))
	done := make(chan int, len(cfg.Targets))
	for i, target := range cfg.Targets {
		i, target := i, target
		go func() {
			latency, err := prober.Probe(ctx, target.Host)
			results[i] = result{target: target, latency: latency, ok: err == nil}
			done <- i
		}()
	}
	for range cfg.Targets {
		<-done
	}

	for _, r := range results {
		tier := monitor.Classify(r.latency, r.ok)
		latency := "timeout"
		if r.ok {
			latency = monitor.FormatLatency(r.latency)
		}
		fmt.Printf("%s %-20s %-20s %s\n", tier.Glyph(), r.target.Name, r.target.Host, latency)
	}

	return nil
}

// applyWatchOverrides folds command-line overrides into the loaded config.
func applyWatchOverrides(cfg *config.Config, opts watchOptions) error {
	if opts.Targets != "" {
		targets, err := parseTargetsFlag(opts.Targets)
		if err != nil {
			return err
		}
		cfg.Targets = targets
	}

	if opts.Interval != "" {
		d, err := parseDurationFlag("interval", opts.Interval, "2s, 5s, or 1m")
		if err != nil {
			return err
		}
		cfg.Interval = d
	}

	if opts.Window != "" {
		d, err := parseDurationFlag("window", opts.Window, "10m, 30m, or 1h")
		if err != nil {
			return err
		}
		cfg.Window = d
	}

	if opts.Width != 0 {
		cfg.GraphWidth = opts.Width
	}

	if opts.ProbeTimeout != "" {
		d, err := parseDurationFlag("probe-timeout", opts.ProbeTimeout, "1s or 500ms")
		if err != nil {
			return err
		}
		cfg.ProbeTimeout = d
	}

	return nil
}

// parseTargetsFlag parses the --targets value: comma-separated entries,
// each either a bare host or name=host.
func parseTargetsFlag(value string) ([]config.Target, error) {
	var targets []config.Target
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, host := entry, entry
		if i := strings.Index(entry, "="); i >= 0 {
			name = strings.TrimSpace(entry[:i])
			host = strings.TrimSpace(entry[i+1:])
		}
		if name == "" || host == "" {
			return nil, errors.New(errors.ErrConfig,
				fmt.Sprintf("Invalid target entry: %q", entry),
				"Use a bare host (8.8.8.8) or name=host (dns=8.8.8.8)")
		}
		targets = append(targets, config.Target{Name: name, Host: host})
	}

	if len(targets) == 0 {
		return nil, errors.New(errors.ErrConfig,
			"No targets in --targets",
			"Provide at least one host, e.g. --targets 8.8.8.8,1.1.1.1")
	}

	return targets, nil
}

func parseDurationFlag(name, value, examples string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid %s: %s", name, value),
			"Use a valid duration like "+examples)
	}
	return d, nil
}
