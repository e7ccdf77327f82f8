// Package config reads the ~/.lockpatternrc file shared by the lockpattern
// commands. The file is plain key=value lines; blank lines and lines starting
// with '#' are skipped, unknown keys are ignored, and a missing file simply
// yields the defaults.
//
//	# ~/.lockpatternrc
//	secret     = 01347
//	error_ms   = 900
//	export_dir = ~/Pictures/patterns
//	labels     = true
//	log_file   = /tmp/lockpattern.log
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lockpattern/pattern"
)

// FileName is the rc file looked up in the user's home directory.
const FileName = ".lockpatternrc"

// DefaultSecret is the demo pattern used when none is configured.
const DefaultSecret = "01347"

// ErrBadValue indicates a recognised key with an unusable value.
var ErrBadValue = errors.New("config: bad value")

// Config holds host settings.
type Config struct {
	// Secret is the pattern gestures are checked against.
	Secret pattern.Secret
	// ErrorDisplay is how long a wrong pattern stays red before it is cleared.
	ErrorDisplay time.Duration
	// ExportDir is where PNG snapshots go; empty means the working directory.
	ExportDir string
	// Labels prints node indices on exported PNGs.
	Labels bool
	// LogFile receives debug logs; empty disables logging.
	LogFile string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Secret:       pattern.MustSecret(0, 1, 3, 4, 7),
		ErrorDisplay: 800 * time.Millisecond,
	}
}

// Load reads ~/.lockpatternrc over the defaults. A missing home directory or
// file is not an error.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}

	return LoadFile(filepath.Join(home, FileName), home)
}

// LoadFile reads the rc file at path; home expands a leading "~" in paths.
func LoadFile(path, home string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, home)
}

// Parse reads key=value lines from r over the defaults.
func Parse(r io.Reader, home string) (Config, error) {
	cfg := Default()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.SplitN(text, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])

		if err := cfg.set(key, value, home); err != nil {
			return cfg, fmt.Errorf("config: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("config: read: %w", err)
	}

	return cfg, nil
}

func (c *Config) set(key, value, home string) error {
	switch key {
	case "secret", "password", "pattern":
		s, err := pattern.Parse(value)
		if err != nil {
			return err
		}
		c.Secret = s
	case "error_ms", "errorms", "error_display_ms":
		ms, err := strconv.Atoi(value)
		if err != nil || ms < 0 {
			return fmt.Errorf("%w: %s=%q", ErrBadValue, key, value)
		}
		c.ErrorDisplay = time.Duration(ms) * time.Millisecond
	case "export_dir", "exportdir", "savedir":
		c.ExportDir = expandPath(value, home)
	case "labels":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadValue, key, value)
		}
		c.Labels = b
	case "log_file", "logfile":
		c.LogFile = expandPath(value, home)
	}

	return nil
}

// ExportPath joins name onto ExportDir, creating the directory if needed.
func (c Config) ExportPath(name string) (string, error) {
	if c.ExportDir == "" {
		return name, nil
	}
	if err := os.MkdirAll(c.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("config: create %s: %w", c.ExportDir, err)
	}

	return filepath.Join(c.ExportDir, name), nil
}

func expandPath(value, home string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") && home != "" {
		value = filepath.Join(home, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if abs, err := filepath.Abs(value); err == nil {
			value = abs
		}
	}

	return value
}
