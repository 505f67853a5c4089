package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .pingdeck.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Targets are the hosts to monitor, probed concurrently.
	Targets []Target `yaml:"targets" mapstructure:"targets"`

	// Interval is the pause between successive probes of the same target.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Window is how much probe history each target retains. Samples older
	// than this are evicted and fall off the left edge of the timeline.
	Window time.Duration `yaml:"window" mapstructure:"window"`

	// GraphWidth is the number of timeline columns per target.
	GraphWidth int `yaml:"graph_width" mapstructure:"graph_width"`

	// ProbeTimeout is how long a single ping may take before it counts
	// as a timeout.
	ProbeTimeout time.Duration `yaml:"probe_timeout" mapstructure:"probe_timeout"`
}

// Target defines a single host to monitor.
type Target struct {
	// Name is the display label, unique across targets.
	Name string `yaml:"name" mapstructure:"name"`

	// Host is what gets passed to ping: an IP address or hostname.
	Host string `yaml:"host" mapstructure:"host"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Targets: []Target{
			{Name: "Google DNS", Host: "8.8.8.8"},
			{Name: "Cloudflare", Host: "1.1.1.1"},
			{Name: "Google", Host: "google.com"},
			{Name: "GitHub", Host: "github.com"},
			{Name: "StackOverflow", Host: "stackoverflow.com"},
		},
		Interval:     2 * time.Second,
		Window:       10 * time.Minute,
		GraphWidth:   60,
		ProbeTimeout: 1 * time.Second,
	}
}
