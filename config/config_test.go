package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `diary:
  path: "trips.csv"
  trip_based: true
matsim:
  input: "plans.xml"
  output: "plans_fixed.xml"
  simplify_pt_trips: true
repair:
  crop: true
  times: true
  locations: false
speeds:
  car: 40
  walk: 4.5
logging:
  level: "debug"
metrics:
  enabled: true
  addr: ":9100"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"diary.path", cfg.Diary.Path, "trips.csv"},
		{"diary.trip_based", cfg.Diary.TripBased, true},
		{"matsim.input", cfg.MATSim.Input, "plans.xml"},
		{"matsim.output", cfg.MATSim.Output, "plans_fixed.xml"},
		{"matsim.simplify_pt_trips", cfg.MATSim.SimplifyPTTrips, true},
		{"repair.crop", cfg.Repair.Crop, true},
		{"repair.locations", cfg.Repair.Locations, false},
		{"speeds.car", cfg.Speeds["car"], 40.0},
		{"speeds.walk", cfg.Speeds["walk"], 4.5},
		{"logging.level", cfg.Logging.Level, "debug"},
		{"metrics.enabled", cfg.Metrics.Enabled, true},
		{"metrics.addr", cfg.Metrics.Addr, ":9100"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("diary:\n  path: trips.csv\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if !cfg.Repair.Crop || !cfg.Repair.Times || !cfg.Repair.Locations {
		t.Errorf("repair defaults not applied: %+v", cfg.Repair)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %s, want info", cfg.Logging.Level)
	}
	if cfg.MATSim.Output != "plans_out.xml" {
		t.Errorf("matsim output = %s", cfg.MATSim.Output)
	}
	if cfg.Metrics.Addr != ":2112" {
		t.Errorf("metrics addr = %s", cfg.Metrics.Addr)
	}
	if cfg.Speeds["walk"] == 0 {
		t.Errorf("default speeds not applied")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DAYPLAN_LOGGING__LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging level = %s, want warn", cfg.Logging.Level)
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for bad level")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
