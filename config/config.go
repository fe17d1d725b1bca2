package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/dayplan/core/metrics"
	"github.com/kilianp07/dayplan/core/plan"
)

type Config struct {
	Diary   DiaryConfig        `json:"diary"`
	MATSim  MATSimConfig       `json:"matsim"`
	Repair  plan.FixConfig     `json:"repair"`
	Speeds  map[string]float64 `json:"speeds"`
	Logging LoggingConfig      `json:"logging"`
	Metrics metrics.Config     `json:"metrics"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("DAYPLAN_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "dayplan_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Config{Repair: plan.DefaultFixConfig()}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Diary.SetDefaults()
	cfg.MATSim.SetDefaults()
	cfg.Logging.SetDefaults()
	cfg.Metrics.SetDefaults()
	if len(cfg.Speeds) == 0 {
		cfg.Speeds = make(map[string]float64, len(plan.DefaultModeSpeeds))
		for mode, speed := range plan.DefaultModeSpeeds {
			cfg.Speeds[mode] = speed
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks each section.
func (c Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	for mode, speed := range c.Speeds {
		if speed <= 0 {
			return fmt.Errorf("speed for mode %s must be positive", mode)
		}
	}
	return nil
}
