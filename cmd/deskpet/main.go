// Package main is the entry point for the deskpet desktop companion.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/iYeremy/deskpet/internal/app"
	"github.com/iYeremy/deskpet/internal/config"
	"github.com/iYeremy/deskpet/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// -writeconfig dumps the effective config where the next run finds it
	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Write config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== deskpet ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Hyprland runs SDL through XWayland; the x11 driver is the one that
	// honors always-on-top overlay windows there.
	if cfg.Window.ForceX11 && os.Getenv("SDL_VIDEODRIVER") == "" {
		os.Setenv("SDL_VIDEODRIVER", "x11")
	}

	// Create and run the pet
	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create pet", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("pet error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("pet closed normally")
}
