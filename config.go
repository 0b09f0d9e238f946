package crossbar

import "fmt"

// Config is a serialisable representation of the scheduler configuration.
// It can be populated from JSON, YAML, environment variables, etc. The
// zero-value is useful - all nested fields inherit their package defaults.

type Config struct {
	// TopologyURL locates the hardware descriptor (any afs scheme).
	TopologyURL string `json:"topologyURL" yaml:"topologyURL"`
	// Resources overrides the descriptor's declared resource kinds.
	Resources []string `json:"resources,omitempty" yaml:"resources,omitempty"`
	// MaxCycle overrides the descriptor's schedule horizon when positive.
	MaxCycle int `json:"maxCycle,omitempty" yaml:"maxCycle,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
// Callers may modify the returned struct before passing it to New.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.MaxCycle < 0 {
		return fmt.Errorf("maxCycle must be >= 0")
	}
	return nil
}
