package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"mooddine/cmd"
	"mooddine/internal/dataset"
	"mooddine/internal/db"
	"mooddine/internal/model"
	"mooddine/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	opts, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if opts.ShowVersion {
		fmt.Println("mooddine", version)
		return
	}
	cfg := opts.Config

	// The TUI owns stdout, so logs go to a file or nowhere.
	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "mooddine")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	for _, w := range opts.Warnings {
		fmt.Fprintln(os.Stderr, "ℹ ", w)
		log.Printf("[config] %s", w)
	}

	handle, err := dataset.Open(model.Variant(cfg.Data.Variant), cfg.Data.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// Load up front so a bad file fails before the screen is taken over.
	if _, err := handle.Get(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load places: %v\n", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ℹ  Shortlist disabled: %v\n", err)
		log.Printf("[db] open %s: %v", cfg.Storage.DBPath, err)
		database = nil
	} else {
		defer database.Close()
	}

	p := tea.NewProgram(ui.New(handle, database, cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(ui.Model); ok && m.Err() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", m.Err())
		os.Exit(1)
	}
}
