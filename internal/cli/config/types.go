// Package config provides configuration management for the spacemissions CLI.
//
// Values are layered with koanf, highest precedence first: explicitly set
// flags, SPACEMISSIONS_* environment variables, the YAML config file, and
// built-in defaults.
package config

// ChartConfig holds settings for chart files.
type ChartConfig struct {
	Width  float64 `koanf:"width"`  // inches
	Height float64 `koanf:"height"` // inches
	Title  string  `koanf:"title"`
}

// Config holds all CLI configuration options.
type Config struct {
	DataPath     string      `koanf:"data"`
	Delimiter    string      `koanf:"delimiter"`
	OutputFormat string      `koanf:"output"`
	Verbose      bool        `koanf:"verbose"`
	Summary      bool        `koanf:"summary"`
	PlotFile     string      `koanf:"plot_file"`
	Chart        ChartConfig `koanf:"chart"`
}

// Default configuration values.
const (
	DefaultDataPath    = "data.csv"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultChartWidth  = 12.0
	DefaultChartHeight = 6.0
	EnvPrefix          = "SPACEMISSIONS_"
)

// ConfigFileNames are searched for in the working directory, in order.
var ConfigFileNames = []string{"spacemissions.yaml", "spacemissions.yml"}

// DelimiterRune returns the configured field delimiter, or 0 to let the
// loader pick one. "\t" and "tab" both select a tab.
func (c *Config) DelimiterRune() rune {
	switch c.Delimiter {
	case "":
		return 0
	case `\t`, "tab":
		return '\t'
	default:
		return []rune(c.Delimiter)[0]
	}
}
