// Command lockpattern is an interactive terminal lock screen: drag with the
// left mouse button across the 3×3 grid to trace a pattern.
//
// A wrong pattern turns red for error_ms (see ~/.lockpatternrc) and then
// clears. Press e to enroll a new pattern, p to save the current frame as
// PNG, y to copy the last traced pattern to the clipboard, q to quit.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/lockpattern/config"
	"github.com/katalvlaran/lockpattern/pattern"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	secret := flag.String("secret", cfg.Secret.String(), "pattern to unlock with, e.g. 01347")
	enroll := flag.Bool("enroll", false, "start by enrolling a new pattern")
	logFile := flag.String("log", cfg.LogFile, "write debug logs to this file")
	flag.Parse()

	if cfg.Secret, err = pattern.Parse(*secret); err != nil {
		log.Fatalf("bad -secret: %v", err)
	}

	logger, closeLog, err := openLogger(*logFile)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	mode := ModeUnlock
	if *enroll {
		mode = ModeEnroll
	}

	p := tea.NewProgram(
		newModel(cfg, mode, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// openLogger returns a debug logger writing to path, or a discarding one when
// path is empty. The terminal belongs to the UI, so logs never go to stdout.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return logger, func() { _ = f.Close() }, nil
}
