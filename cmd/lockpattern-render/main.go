// Command lockpattern-render replays a traced pattern through the widget and
// writes the final frame as PNG.
//
// Usage:
//
//	lockpattern-render -trace 0-1-2-5-8 -size 480x800 -out pattern.png
//
// The trace is fed as real pointer events: a press on the first node, a run
// of interpolated moves toward every following node, then a release. Moves
// that cross another node's circle select it, just as a finger would.
// The exit status is 0 on Match, 1 on Mismatch and 2 on usage errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lockpattern/config"
	"github.com/katalvlaran/lockpattern/pattern"
	"github.com/katalvlaran/lockpattern/render/ggraster"
	"github.com/katalvlaran/lockpattern/widget"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fs := flag.NewFlagSet("lockpattern-render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	size := fs.String("size", "480x800", "surface size as WIDTHxHEIGHT")
	traceArg := fs.String("trace", "", "node indices to trace, e.g. 01347 or 0-1-3-4-7")
	secretArg := fs.String("secret", cfg.Secret.String(), "pattern to compare against")
	out := fs.String("out", "pattern.png", "output PNG path")
	labels := fs.Bool("labels", cfg.Labels, "print node indices on the image")
	steps := fs.Int("steps", 8, "interpolated moves per segment")
	verbose := fs.Bool("v", false, "debug logging on stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, *verbose)

	width, height, err := parseSize(*size)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	trace, err := pattern.Parse(*traceArg)
	if err != nil || trace.IsEmpty() {
		fmt.Fprintf(stderr, "bad -trace %q: %v\n", *traceArg, err)
		return 2
	}
	secret, err := pattern.Parse(*secretArg)
	if err != nil {
		fmt.Fprintf(stderr, "bad -secret: %v\n", err)
		return 2
	}

	w := widget.New(widget.WithSecret(secret), widget.WithLogger(logger))
	if err := w.OnSurfaceResized(width, height); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	res, err := replay(w, trace.Indices(), *steps)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	path := *out
	if filepath.Dir(path) == "." {
		if path, err = cfg.ExportPath(path); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	opts := ggraster.DefaultOptions()
	opts.Labels = *labels
	if err := ggraster.Export(w.RenderModel(), path, opts); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fmt.Fprintf(stdout, "traced %v: %s (%s)\n", w.Selection(), res.Outcome, path)
	if res.Outcome != pattern.Match {
		return 1
	}

	return 0
}

// replay presses on trace[0], moves in steps toward each following node and
// releases on the last one.
func replay(w *widget.Widget, trace []int, steps int) (widget.Result, error) {
	l := w.Layout()
	if l == nil {
		return widget.Result{}, errors.New("no layout")
	}
	if steps < 1 {
		steps = 1
	}
	prev, ok := l.Center(trace[0])
	if !ok {
		return widget.Result{}, fmt.Errorf("node %d out of range", trace[0])
	}
	w.OnPointerDown(prev.X, prev.Y)
	for _, idx := range trace[1:] {
		next, ok := l.Center(idx)
		if !ok {
			return widget.Result{}, fmt.Errorf("node %d out of range", idx)
		}
		for s := 1; s <= steps; s++ {
			f := float64(s) / float64(steps)
			w.OnPointerMove(prev.X+(next.X-prev.X)*f, prev.Y+(next.Y-prev.Y)*f)
		}
		prev = next
	}

	return w.OnPointerUp(prev.X, prev.Y), nil
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("bad -size %q: want WIDTHxHEIGHT", s)
	}
	width, err1 := strconv.Atoi(strings.TrimSpace(ws))
	height, err2 := strconv.Atoi(strings.TrimSpace(hs))
	if err := errors.Join(err1, err2); err != nil {
		return 0, 0, fmt.Errorf("bad -size %q: %w", s, err)
	}

	return width, height, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
