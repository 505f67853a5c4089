package config

import (
	"fmt"
	"os"

	"github.com/pingdeck/pingdeck/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = `# pingdeck configuration
# Run 'pingdeck' (or 'pingdeck watch') to start monitoring
# See: https://github.com/pingdeck/pingdeck for documentation

`

// Write marshals the config to YAML and writes it to path with a
// header comment.
func Write(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	content := fileHeader + string(data)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}

	return nil
}
