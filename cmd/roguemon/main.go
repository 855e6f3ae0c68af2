package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NathanielCarballo/RogueMon/internal/battleclient"
	"github.com/NathanielCarballo/RogueMon/internal/config"
	"github.com/NathanielCarballo/RogueMon/internal/constants"
	"github.com/NathanielCarballo/RogueMon/internal/logging"
	"github.com/NathanielCarballo/RogueMon/internal/storage"
	"github.com/NathanielCarballo/RogueMon/internal/tui"
)

func main() {
	cfg := loadConfig()

	// Keep diagnostics off the rendered screen. ROGUEMON_LOG selects a
	// file; otherwise logs are dropped while the TUI owns the terminal.
	logSink := os.Stderr
	if path := os.Getenv(constants.EnvLogFile); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			logSink = f
			defer f.Close()
		}
	} else {
		devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err == nil {
			logSink = devNull
			defer devNull.Close()
		}
	}
	logging.SetOutput(logSink)

	if url := os.Getenv(constants.EnvServerURL); url != "" {
		cfg.ServerURL = url
	}
	dbPath := cfg.DBPath
	if p := os.Getenv(constants.EnvDBPath); p != "" {
		dbPath = p
	}

	stores := storage.Stores{Session: storage.NewMemoryKV()}
	var archive storage.KV
	if db, err := storage.OpenAndMigrate(dbPath); err != nil {
		// Run without persistence rather than refusing to start.
		logging.Error("failed to open persistent store", err, logging.Fields{"db_path": dbPath})
		stores.Persistent = storage.NewMemoryKV()
	} else {
		kv := storage.NewSQLiteKV(db)
		stores.Persistent = kv
		archive = kv
	}
	roster := storage.NewRoster(stores.Session, archive)

	client := battleclient.New(cfg.ServerURL)
	model := tui.NewModel(client, stores, roster, cfg.TextSpeed, cfg.AssetsDir)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	path := os.Getenv(constants.EnvConfigPath)
	if path == "" {
		return config.Default()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid roguemon configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}
