package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Client *struct {
		ServerURL   string `json:"server_url"`
		TextSpeedMS int    `json:"text_speed_ms"`
		DBPath      string `json:"db_path"`
		AssetsDir   string `json:"assets_dir"`
	} `json:"client"`
}

// Config carries settings for both binaries. The client and the dev
// server read the same file; each uses its own section.
type Config struct {
	// ServerAddress is the bind address for roguemon-server.
	ServerAddress string
	// ServerURL is the battle service the client talks to.
	ServerURL string
	// TextSpeed is the typewriter reveal interval per character.
	TextSpeed time.Duration
	// DBPath is the sqlite file backing the persistent store.
	DBPath string
	// AssetsDir is the root of the sprite tree.
	AssetsDir string
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		ServerAddress: ":5000",
		ServerURL:     "http://127.0.0.1:5000",
		TextSpeed:     18 * time.Millisecond,
		DBPath:        "./data/roguemon.db",
		AssetsDir:     "./assets",
	}
}

// LoadConfig reads the configuration file at path, applying defaults for
// anything omitted.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := Default()
	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.Client != nil {
		if rc.Client.ServerURL != "" {
			cfg.ServerURL = rc.Client.ServerURL
		}
		if rc.Client.TextSpeedMS < 0 {
			return nil, fmt.Errorf("config file %s: text_speed_ms must not be negative", path)
		}
		if rc.Client.TextSpeedMS > 0 {
			cfg.TextSpeed = time.Duration(rc.Client.TextSpeedMS) * time.Millisecond
		}
		if rc.Client.DBPath != "" {
			cfg.DBPath = rc.Client.DBPath
		}
		if rc.Client.AssetsDir != "" {
			cfg.AssetsDir = rc.Client.AssetsDir
		}
	}
	return cfg, nil
}
