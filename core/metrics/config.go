package metrics

import "fmt"

// Config defines settings for the metrics endpoint.
type Config struct {
	// Enabled turns the Prometheus sink and HTTP endpoint on.
	Enabled bool `json:"enabled"`
	// Addr is the listen address of the metrics server.
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":2112"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Enabled && c.Addr == "" {
		return fmt.Errorf("addr is required when metrics are enabled")
	}
	return nil
}
