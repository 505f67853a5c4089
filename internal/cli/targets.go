package cli

import (
	"fmt"

	"github.com/pingdeck/pingdeck/internal/config"
	"github.com/pingdeck/pingdeck/internal/errors"
	"github.com/pingdeck/pingdeck/internal/ui"
)

// targetsListCommand prints the configured targets.
func targetsListCommand() error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	for _, t := range cfg.Targets {
		fmt.Printf("%-20s %s\n", t.Name, t.Host)
	}
	return nil
}

// targetsImportCommand imports targets from an SSH client config. Without
// --write it only previews what would be added.
func targetsImportCommand(sshConfigPath string, write bool) error {
	imported, err := config.ImportSSHHosts(sshConfigPath)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse SSH config",
			"Check the file is a valid OpenSSH client config")
	}
	if len(imported) == 0 {
		fmt.Println("No concrete Host entries found.")
		return nil
	}

	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	// Skip entries whose name collides with an existing target
	existing := make(map[string]bool, len(cfg.Targets))
	for _, t := range cfg.Targets {
		existing[t.Name] = true
	}

	var added []config.Target
	for _, t := range imported {
		if existing[t.Name] {
			continue
		}
		added = append(added, t)
	}

	if len(added) == 0 {
		fmt.Println("All imported hosts are already configured.")
		return nil
	}

	for _, t := range added {
		fmt.Printf("%-20s %s\n", t.Name, t.Host)
	}

	if !write {
		fmt.Printf("\n%d host(s) found. Re-run with --write to add them to %s\n",
			len(added), config.ConfigFileName)
		return nil
	}

	cfg.Targets = append(cfg.Targets, added...)
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := config.Find(configFlag)
	if err != nil {
		return err
	}
	if path == "" {
		path = config.ConfigFileName
	}

	if err := config.Write(cfg, path); err != nil {
		return err
	}

	fmt.Printf("\n%s Added %d target(s) to %s\n", ui.SymbolSuccess, len(added), path)
	return nil
}
