package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "window"})
	settings := config.Load()
	logger.Info("starting", "fps", settings.FPS, "seed", settings.Seed, "font", settings.Font)

	err := window.Run(window.Options{
		FPS:      settings.FPS,
		Seed:     settings.Seed,
		FontPath: settings.Font,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("window error", "err", err)
		os.Exit(1)
	}
}
