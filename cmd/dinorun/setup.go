package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/assets"
	"github.com/vovakirdan/dino-runner/internal/audio"
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

// loadRunnerConfig resolves --config and applies --difficulty.
func loadRunnerConfig() (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger returns a logger writing to --log, or to fallback when unset.
// The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	var w io.Writer = fallback
	var closer io.Closer = nopCloser{}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dinorun",
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// buildDeps loads everything a play session needs. logOut receives logs
// when --log is unset. The cleanup func releases what was opened.
func buildDeps(logOut io.Writer) (tui.Deps, func(), error) {
	logger, logCloser, err := newLogger(logOut)
	if err != nil {
		return tui.Deps{}, nil, err
	}

	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		logCloser.Close()
		return tui.Deps{}, nil, err
	}

	atlas, err := assets.Load()
	if err != nil {
		logCloser.Close()
		return tui.Deps{}, nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	var sound *audio.Player
	if flagSound {
		sound, err = audio.NewPlayer(0.8)
		if err != nil {
			logger.Warn("sound disabled", "error", err)
			sound = nil
		}
	}

	deps := tui.Deps{
		Runner: runnerCfg,
		Atlas:  atlas,
		Store:  store,
		Sound:  sound,
		Logger: logger,
	}

	cleanup := func() {
		sound.Close()
		if store != nil {
			store.Close()
		}
		logCloser.Close()
	}
	return deps, cleanup, nil
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playerName is the local user's name for the run history.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
