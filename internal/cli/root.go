package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Persistent flags
var configFlag string

// rootCmd is the base command. Running pingdeck with no subcommand starts
// the dashboard.
var rootCmd = &cobra.Command{
	Use:   "pingdeck",
	Short: "Terminal network latency monitor",
	Long: `pingdeck is a terminal-resident network latency monitor.

It concurrently pings a set of named targets, classifies each round-trip
time into a severity tier, and renders a live dashboard with per-target
status and a time-bucketed history timeline.

Running pingdeck with no subcommand is the same as 'pingdeck watch'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchOptionsFromFlags())
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
}
