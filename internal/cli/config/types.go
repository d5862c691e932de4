// Package config provides configuration management for the Numble CLI.
//
// Settings come from four layers, lowest to highest precedence: built-in
// defaults, a numble.yaml config file, NUMBLE_* environment variables, and
// explicitly-set command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Policy   string `koanf:"policy"`   // sensible | dumb
	FindAll  bool   `koanf:"find_all"` // enumerate all solutions
	Notation string `koanf:"notation"` // infix | postfix
	Output   string `koanf:"output"`   // text | table | markdown | json | csv
	Verbose  bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultPolicy   = "sensible"
	DefaultNotation = "infix"
	DefaultOutput   = "text"
)

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Policy:   DefaultPolicy,
		Notation: DefaultNotation,
		Output:   DefaultOutput,
	}
}
