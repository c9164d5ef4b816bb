package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"mooddine/internal/config"

	"github.com/joho/godotenv"
)

// Options is the resolved startup configuration.
type Options struct {
	Config      config.Config
	Warnings    []string
	ShowVersion bool
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(version string) (*Options, error) {
	// Load .env files first so env-based defaults work with flag parsing.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	return Parse(os.Args[1:], version)
}

// Parse resolves configuration from args, the environment and the YAML
// config file. Flags win over env vars, env vars over YAML.
func Parse(args []string, version string) (*Options, error) {
	fs := flag.NewFlagSet("mooddine", flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv("MOODDINE_CONFIG"), "Path to YAML config (default: ~/.mooddine/config.yml)")
	dataPath := fs.String("data", "", "Path to the restaurant CSV (or set MOODDINE_DATA)")
	variant := fs.String("variant", "", "Dataset variant: nearby or dining (or set MOODDINE_VARIANT)")
	dbPath := fs.String("db", "", "Path to shortlist SQLite database (default: ~/.mooddine/shortlist.db)")
	logPath := fs.String("log", "", "Write debug log to this file")
	showVersion := fs.Bool("version", false, "Print version "+version+" and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	configDir := filepath.Join(home, ".mooddine")

	if *configPath == "" {
		*configPath = filepath.Join(configDir, "config.yml")
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}

	overlay(&cfg.Data.Variant, os.Getenv("MOODDINE_VARIANT"), *variant)
	overlay(&cfg.Data.Path, os.Getenv("MOODDINE_DATA"), *dataPath)
	overlay(&cfg.Storage.DBPath, "", *dbPath)
	overlay(&cfg.Log.Path, os.Getenv("MOODDINE_LOG"), *logPath)

	// A data path with no variant means the CSV browser.
	if (*dataPath != "" || os.Getenv("MOODDINE_DATA") != "") && *variant == "" && os.Getenv("MOODDINE_VARIANT") == "" {
		cfg.Data.Variant = "dining"
	}

	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = filepath.Join(configDir, "shortlist.db")
	}
	if cfg.Storage.PrefsPath == "" {
		cfg.Storage.PrefsPath = filepath.Join(configDir, "prefs.json")
	}
	cfg, v := config.NormalizeAndValidate(cfg)
	if err := v.Err(); err != nil {
		return nil, err
	}

	// Directories are created from the expanded paths.
	for _, p := range []string{cfg.Storage.DBPath, cfg.Storage.PrefsPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return &Options{Config: cfg, Warnings: v.Warnings, ShowVersion: *showVersion}, nil
}

// overlay sets *dst to the last non-empty value.
func overlay(dst *string, values ...string) {
	for _, v := range values {
		if v != "" {
			*dst = v
		}
	}
}
