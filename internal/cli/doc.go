// Package cli implements the pingdeck command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small command function for the actual work:
//
//	pingdeck                 - Start the dashboard (alias for watch)
//	pingdeck watch           - Live latency dashboard
//	pingdeck watch --once    - Single plain-text snapshot, no TTY needed
//	pingdeck init            - Create .pingdeck.yaml interactively
//	pingdeck targets list    - Print configured targets
//	pingdeck targets import  - Pull hosts from an SSH client config
//	pingdeck version         - Version information
//	pingdeck completion      - Shell completion scripts
//
// Configuration resolution order: --config flag, .pingdeck.yaml in the
// current directory or a parent (stopping at the git root or home), then
// ~/.config/pingdeck/config.yaml, then built-in defaults. Flags override
// whatever the config file provides.
package cli
