package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/spacemissions/internal/cli/output"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data path is required")
	}

	if !output.IsValidMode(c.OutputFormat) {
		modes := make([]string, len(output.Modes))
		for i, m := range output.Modes {
			modes[i] = string(m)
		}
		return fmt.Errorf("invalid output format %q (expected one of: %s)", c.OutputFormat, strings.Join(modes, ", "))
	}

	switch c.Delimiter {
	case "", `\t`, "tab":
	default:
		if utf8.RuneCountInString(c.Delimiter) != 1 {
			return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
		}
		if r := c.DelimiterRune(); r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
			return fmt.Errorf("invalid delimiter %q", c.Delimiter)
		}
	}

	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %gx%g", c.Chart.Width, c.Chart.Height)
	}

	return nil
}
