package cli

import (
	"os"

	"github.com/pingdeck/pingdeck/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	watchTargetsFlag      string
	watchIntervalFlag     string
	watchWindowFlag       string
	watchWidthFlag        int
	watchProbeTimeoutFlag string
	watchOnceFlag         bool
	initForce             bool
	importSSHConfigFlag   string
	importWriteFlag       bool
)

// watchCmd starts the TUI latency dashboard
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live latency dashboard for configured targets",
	Long: `Start the interactive latency dashboard.

Each configured target is pinged concurrently on a fixed interval. Rows
show the current tier, latency, and a timeline of the retention window
bucketed into fixed-width columns.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  ?           Toggle help

Examples:
  pingdeck watch
  pingdeck watch --targets 8.8.8.8,1.1.1.1
  pingdeck watch --interval 5s --window 30m
  pingdeck watch --once`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchOptionsFromFlags())
	},
}

// initCmd creates a new .pingdeck.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .pingdeck.yaml configuration",
	Long: `Initialize a new pingdeck configuration file.

Creates a .pingdeck.yaml in the current directory, guiding you through
target setup with interactive prompts.

Examples:
  pingdeck init
  pingdeck init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

// targetsCmd groups target inspection and import subcommands
var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Inspect and import monitoring targets",
}

// targetsListCmd prints the configured targets
var targetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return targetsListCommand()
	},
}

// targetsImportCmd imports targets from an SSH client config
var targetsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import targets from ~/.ssh/config",
	Long: `Import monitoring targets from an OpenSSH client config.

Each concrete Host entry becomes a target named after its alias, pinging
its HostName. Wildcard patterns are skipped.

Examples:
  pingdeck targets import
  pingdeck targets import --ssh-config ~/.ssh/work-config --write`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return targetsImportCommand(importSSHConfigFlag, importWriteFlag)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for pingdeck.

Examples:
  # Bash
  pingdeck completion bash > /etc/bash_completion.d/pingdeck

  # Zsh
  pingdeck completion zsh > "${fpath[1]}/_pingdeck"

  # Fish
  pingdeck completion fish > ~/.config/fish/completions/pingdeck.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

// registerWatchFlags wires the dashboard flags onto a command. The root
// command shares them so bare 'pingdeck' behaves like 'pingdeck watch'.
func registerWatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&watchTargetsFlag, "targets", "", "override targets (comma-separated hosts or name=host pairs)")
	cmd.Flags().StringVar(&watchIntervalFlag, "interval", "", "probe interval (e.g., 2s, 5s)")
	cmd.Flags().StringVar(&watchWindowFlag, "window", "", "history retention window (e.g., 10m, 1h)")
	cmd.Flags().IntVar(&watchWidthFlag, "width", 0, "timeline columns")
	cmd.Flags().StringVar(&watchProbeTimeoutFlag, "probe-timeout", "", "single probe timeout (e.g., 1s)")
	cmd.Flags().BoolVar(&watchOnceFlag, "once", false, "probe every target once, print a snapshot, and exit")
}

func init() {
	registerWatchFlags(watchCmd)
	registerWatchFlags(rootCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	targetsImportCmd.Flags().StringVar(&importSSHConfigFlag, "ssh-config", "", "path to SSH config (default ~/.ssh/config)")
	targetsImportCmd.Flags().BoolVar(&importWriteFlag, "write", false, "merge imported targets into the config file")

	targetsCmd.AddCommand(targetsListCmd)
	targetsCmd.AddCommand(targetsImportCmd)

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(completionCmd)
}
