package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neruppu-daa/internal/audio"
	"github.com/vovakirdan/neruppu-daa/internal/config"
	"github.com/vovakirdan/neruppu-daa/internal/core"
	"github.com/vovakirdan/neruppu-daa/internal/games/neruppu"
	"github.com/vovakirdan/neruppu-daa/internal/platform/tui"
	"github.com/vovakirdan/neruppu-daa/internal/storage"
)

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Tag every line so sessions appending to one log file stay apart
	logger = logger.With("session", uuid.NewString())

	if source == "" {
		source = "embedded defaults"
	}
	game := neruppu.New()
	logger.Info("starting", "game", game.Title(), "config", source, "seed", flagSeed, "mute", flagMute)

	// Warn early; the game still runs in a small terminal, just clipped
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < neruppu.ScreenWidth || h < neruppu.ScreenHeight+2 {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, Neruppu Daa needs at least %dx%d\n",
				w, h, neruppu.ScreenWidth, neruppu.ScreenHeight+2)
		}
	}

	// The run log lives only as long as this session
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed

	model := tui.NewModel(tui.Options{
		Game:     game,
		Runtime:  runtime,
		Keys:     tui.NewKeyMap(cfg.Keys),
		Hold:     cfg.Input.Hold(),
		Debounce: cfg.Input.Debounce(),
		Audio:    audio.New(cfg.Audio, flagMute, logger),
		Store:    store,
		Logger:   logger,
		Width:    neruppu.ScreenWidth,
		Height:   neruppu.ScreenHeight,
	})

	runErr := tui.Run(ctx, model)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("bye")
}

// newLogger builds the process logger. The TUI owns the terminal, so
// without a log file everything is discarded.
func newLogger(lc config.LogConfig) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "neruppu",
		Level:           lc.ParseLevel(),
	})
	return logger, closeFn, nil
}
