package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kevinburke/ssh_config"
)

// ImportSSHHosts parses an OpenSSH client config and returns monitoring
// targets for its concrete host entries. Wildcard patterns and duplicate
// aliases are skipped. A missing file is not an error; it returns nil.
//
// The target name is the alias; the host is the HostName value, falling
// back to the alias when none is set.
func ImportSSHHosts(configPath string) ([]Target, error) {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(home, ".ssh", "config")
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	cfg, err := ssh_config.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	var targets []Target
	seen := make(map[string]bool)

	for _, host := range cfg.Hosts {
		for _, pattern := range host.Patterns {
			alias := pattern.String()

			// Skip wildcards and special patterns
			if strings.Contains(alias, "*") || strings.Contains(alias, "?") {
				continue
			}
			if seen[alias] {
				continue
			}
			seen[alias] = true

			target := Target{Name: alias, Host: alias}
			if hostname, _ := cfg.Get(alias, "HostName"); hostname != "" {
				target.Host = hostname
			}

			targets = append(targets, target)
		}
	}

	// Sort by name for consistent ordering
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].Name < targets[j].Name
	})

	return targets, nil
}
