package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return fmt.Errorf("dataset.path must not be empty")
	}
	if c.Output.DefaultFold < 0 {
		return fmt.Errorf("output.default_fold must be >= 0 (got %d)", c.Output.DefaultFold)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be \"text\" or \"json\" (got %q)", c.Log.Format)
	}

	return nil
}
