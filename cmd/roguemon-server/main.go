package main

import (
	"os"

	"github.com/NathanielCarballo/RogueMon/internal/api"
	"github.com/NathanielCarballo/RogueMon/internal/config"
	"github.com/NathanielCarballo/RogueMon/internal/constants"
	"github.com/NathanielCarballo/RogueMon/internal/logging"
)

func main() {
	cfg := config.Default()
	if path := os.Getenv(constants.EnvConfigPath); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			logging.Fatal("Missing or invalid roguemon configuration", err, logging.Fields{"config_path": path})
		}
		cfg = loaded
	}

	handler := api.NewBattleHandler()
	router := api.Router(handler)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
