package config

import "fmt"

// DiaryConfig locates the tabular travel diary input.
type DiaryConfig struct {
	// Path is the CSV travel diary file.
	Path string `json:"path"`
	// TripBased disables tour based activity inference and takes each
	// row's purpose as the destination activity type.
	TripBased bool `json:"trip_based"`
}

// SetDefaults applies sane defaults.
func (c *DiaryConfig) SetDefaults() {}

// MATSimConfig locates MATSim plans input and output.
type MATSimConfig struct {
	// Input is an existing MATSim plans file to read.
	Input string `json:"input"`
	// Output is where repaired plans are written.
	Output string `json:"output"`
	// SimplifyPTTrips collapses transit access/egress chains on read.
	SimplifyPTTrips bool `json:"simplify_pt_trips"`
	// Autocomplete fills leg locations from neighbouring activities.
	Autocomplete bool `json:"autocomplete"`
}

// SetDefaults applies sane defaults.
func (c *MATSimConfig) SetDefaults() {
	if c.Output == "" {
		c.Output = "plans_out.xml"
	}
}

// LoggingConfig defines log output settings.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown log level %s", c.Level)
}
