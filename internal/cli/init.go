package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/pingdeck/pingdeck/internal/config"
	"github.com/pingdeck/pingdeck/internal/errors"
	"github.com/pingdeck/pingdeck/internal/probe"
	"github.com/pingdeck/pingdeck/internal/ui"
)

// initCommand creates a new .pingdeck.yaml configuration file.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	var useDefaults bool
	var customName, customHost string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Start with the default target set?").
				Description("Google DNS, Cloudflare, Google, GitHub, StackOverflow").
				Value(&useDefaults),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Extra target host (optional)").
				Description("An IP or hostname to monitor, e.g. your router").
				Placeholder("192.168.1.1 (leave empty to skip)").
				Value(&customHost),
			huh.NewInput().
				Title("Extra target name").
				Description("Display label for the extra target").
				Placeholder("Router").
				Value(&customName).
				Validate(func(s string) error {
					if customHost != "" && strings.TrimSpace(s) == "" {
						return fmt.Errorf("a name is required when adding a target")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility")
	}

	if !useDefaults {
		cfg.Targets = nil
	}
	if strings.TrimSpace(customHost) != "" {
		cfg.Targets = append(cfg.Targets, config.Target{
			Name: strings.TrimSpace(customName),
			Host: strings.TrimSpace(customHost),
		})
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Probe the first target before saving so obvious problems surface
	// now instead of as a wall of timeouts later.
	first := cfg.Targets[0]
	fmt.Println()
	spinner := ui.NewSpinner("Pinging " + first.Host)
	spinner.Start()

	prober := probe.NewPingProber(cfg.ProbeTimeout)
	if _, err := prober.Probe(context.Background(), first.Host); err != nil {
		spinner.Fail()

		var saveAnyway bool
		fmt.Printf("\n%s Probe to '%s' failed: %v\n\n", ui.SymbolFail, first.Host, err)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Save config anyway? (The host may just be dropping ICMP)").
					Value(&saveAnyway),
			),
		)
		if formErr := form.Run(); formErr != nil || !saveAnyway {
			return errors.WrapWithCode(err, errors.ErrProbe,
				fmt.Sprintf("Probe to '%s' failed", first.Host),
				"Check that the host is reachable: ping "+first.Host)
		}
	} else {
		spinner.Success()
		fmt.Println()
	}

	if err := config.Write(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  pingdeck                 - Start the dashboard")
	fmt.Println("  pingdeck targets list    - Show configured targets")
	fmt.Println("  pingdeck targets import  - Pull hosts from ~/.ssh/config")

	return nil
}
