package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingdeck/pingdeck/internal/config"
)

func TestParseTargetsFlag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []config.Target
		wantErr bool
	}{
		{
			name:  "bare hosts",
			input: "8.8.8.8,1.1.1.1",
			want: []config.Target{
				{Name: "8.8.8.8", Host: "8.8.8.8"},
				{Name: "1.1.1.1", Host: "1.1.1.1"},
			},
		},
		{
			name:  "named targets",
			input: "dns=8.8.8.8,cf=1.1.1.1",
			want: []config.Target{
				{Name: "dns", Host: "8.8.8.8"},
				{Name: "cf", Host: "1.1.1.1"},
			},
		},
		{
			name:  "mixed with whitespace",
			input: " dns=8.8.8.8 , github.com ",
			want: []config.Target{
				{Name: "dns", Host: "8.8.8.8"},
				{Name: "github.com", Host: "github.com"},
			},
		},
		{
			name:    "empty value",
			input:   " , ",
			wantErr: true,
		},
		{
			name:    "missing host",
			input:   "dns=",
			wantErr: true,
		},
		{
			name:    "missing name",
			input:   "=8.8.8.8",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTargetsFlag(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyWatchOverrides(t *testing.T) {
	cfg := config.DefaultConfig()

	err := applyWatchOverrides(cfg, watchOptions{
		Targets:      "router=192.168.1.1",
		Interval:     "5s",
		Window:       "30m",
		Width:        80,
		ProbeTimeout: "2s",
	})
	require.NoError(t, err)

	require.Len(t, cfg.Targets, 1)
	assert.Equal(t, config.Target{Name: "router", Host: "192.168.1.1"}, cfg.Targets[0])
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.Equal(t, 30*time.Minute, cfg.Window)
	assert.Equal(t, 80, cfg.GraphWidth)
	assert.Equal(t, 2*time.Second, cfg.ProbeTimeout)
}

func TestApplyWatchOverridesKeepsConfigValues(t *testing.T) {
	cfg := config.DefaultConfig()

	err := applyWatchOverrides(cfg, watchOptions{})
	require.NoError(t, err)

	assert.Len(t, cfg.Targets, 5)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, 10*time.Minute, cfg.Window)
	assert.Equal(t, 60, cfg.GraphWidth)
}

func TestApplyWatchOverridesInvalidDuration(t *testing.T) {
	cfg := config.DefaultConfig()

	err := applyWatchOverrides(cfg, watchOptions{Interval: "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid interval")
}

func TestWatchCommandRejectsInvalidConfig(t *testing.T) {
	// A 100ms interval fails validation before any probing starts
	err := watchCommand(watchOptions{Interval: "100ms", Once: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestWatchFlagsRegistered(t *testing.T) {
	for _, name := range []string{"targets", "interval", "window", "width", "probe-timeout", "once"} {
		assert.NotNil(t, watchCmd.Flags().Lookup(name), "watch should have --%s", name)
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "root should share --%s", name)
	}
}
