package config

import "fmt"

var (
	validPolicies  = []string{"sensible", "dumb"}
	validNotations = []string{"infix", "postfix"}
	validOutputs   = []string{"text", "table", "markdown", "json", "csv"}
)

// Validate checks that every enum-valued setting holds a known value.
func (c *Config) Validate() error {
	if err := oneOf("policy", c.Policy, validPolicies); err != nil {
		return err
	}
	if err := oneOf("notation", c.Notation, validNotations); err != nil {
		return err
	}
	return oneOf("output", c.Output, validOutputs)
}

func oneOf(name, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (valid: %v)", name, value, allowed)
}
