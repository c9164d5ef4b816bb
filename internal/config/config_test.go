package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.Variant != "nearby" || cfg.Display.TopN != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := `
data:
  variant: Dining
  path: ./data/bangalore.csv
display:
  top_n: 5
defaults:
  mood: Party
  min_rating: 4.2
  online_order: YES
storage:
  db_path: /tmp/shortlist.db
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg, v := NormalizeAndValidate(cfg)
	if !v.OK() {
		t.Fatalf("unexpected errors: %v", v.Errors)
	}
	if cfg.Data.Variant != "dining" || cfg.Data.Path != "./data/bangalore.csv" {
		t.Fatalf("data = %+v", cfg.Data)
	}
	if cfg.Display.TopN != 5 || cfg.Display.BudgetStep != 50 {
		t.Fatalf("display = %+v", cfg.Display)
	}
	if cfg.Defaults.OnlineOrder != "yes" || cfg.Defaults.TableBooking != "all" {
		t.Fatalf("defaults = %+v", cfg.Defaults)
	}
	if cfg.Storage.DBPath != "/tmp/shortlist.db" {
		t.Fatalf("storage = %+v", cfg.Storage)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("data: [oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"dining without path", func(c *Config) { c.Data.Variant = "dining" }, "data.path"},
		{"unknown variant", func(c *Config) { c.Data.Variant = "mall" }, "data.variant"},
		{"rating range", func(c *Config) { c.Defaults.MinRating = 6 }, "min_rating"},
		{"negative budget", func(c *Config) { c.Defaults.MaxCost = -1 }, "max_cost"},
		{"bad choice", func(c *Config) { c.Defaults.TableBooking = "maybe" }, "table_booking"},
		{"negative top n", func(c *Config) { c.Display.TopN = -2 }, "top_n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			_, v := NormalizeAndValidate(cfg)
			if v.OK() {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(v.Err().Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", v.Err(), tt.wantErr)
			}
		})
	}
}

func TestNormalizeWarnings(t *testing.T) {
	cfg := Default()
	cfg.Data.Path = "ignored.csv"
	cfg.Display.BudgetStep = 0
	out, v := NormalizeAndValidate(cfg)
	if !v.OK() {
		t.Fatalf("unexpected errors: %v", v.Errors)
	}
	if len(v.Warnings) != 2 {
		t.Fatalf("warnings = %v", v.Warnings)
	}
	if out.Display.BudgetStep != 50 {
		t.Fatalf("budget step = %v", out.Display.BudgetStep)
	}
}

func TestNormalizeExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	cfg.Storage.DBPath = "~/.mooddine/shortlist.db"
	cfg.Log.Path = " /tmp/mooddine.log "
	out, v := NormalizeAndValidate(cfg)
	if !v.OK() {
		t.Fatalf("unexpected errors: %v", v.Errors)
	}
	if want := filepath.Join(home, ".mooddine", "shortlist.db"); out.Storage.DBPath != want {
		t.Fatalf("db path = %q, want %q", out.Storage.DBPath, want)
	}
	if out.Log.Path != "/tmp/mooddine.log" {
		t.Fatalf("log path = %q", out.Log.Path)
	}
}
