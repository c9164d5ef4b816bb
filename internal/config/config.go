package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults are the initial control positions when no preferences exist.
type Defaults struct {
	Mood         string  `yaml:"mood"`
	Area         string  `yaml:"area"`
	MaxCost      float64 `yaml:"max_cost"`
	MinRating    float64 `yaml:"min_rating"`
	OnlineOrder  string  `yaml:"online_order"`  // all | yes | no
	TableBooking string  `yaml:"table_booking"` // all | yes | no
}

type Config struct {
	Data struct {
		Variant string `yaml:"variant"` // nearby | dining
		Path    string `yaml:"path"`
	} `yaml:"data"`

	Display struct {
		TopN       int     `yaml:"top_n"`
		BudgetStep float64 `yaml:"budget_step"`
	} `yaml:"display"`

	Defaults Defaults `yaml:"defaults"`

	Storage struct {
		DBPath    string `yaml:"db_path"`
		PrefsPath string `yaml:"prefs_path"`
	} `yaml:"storage"`

	Log struct {
		Path string `yaml:"path"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.Data.Variant = "nearby"
	cfg.Display.TopN = 10
	cfg.Display.BudgetStep = 50
	cfg.Defaults.OnlineOrder = "all"
	cfg.Defaults.TableBooking = "all"
	return cfg
}

// Load reads a YAML config on top of Default. An empty path or a missing
// file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
