package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/loop"
	"golang.org/x/term"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "game"})
	settings := config.Load()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Error("failed to enable raw mode", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		FPS:  settings.FPS,
		Seed: settings.Seed,
	})
	stop()
	_ = term.Restore(fd, oldState)

	if runErr != nil {
		logger.Error("game error", "err", runErr)
		os.Exit(1)
	}
}
