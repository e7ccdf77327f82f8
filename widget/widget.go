package widget

import (
	"log/slog"
	"sync"

	"github.com/katalvlaran/lockpattern/connector"
	"github.com/katalvlaran/lockpattern/gesture"
	"github.com/katalvlaran/lockpattern/grid"
	"github.com/katalvlaran/lockpattern/layout"
	"github.com/katalvlaran/lockpattern/pattern"
)

// Widget ties the layout, the gesture machine and the secret together.
type Widget struct {
	mu      sync.RWMutex
	layout  *layout.Layout
	machine gesture.Machine
	secret  pattern.Secret

	log       *slog.Logger
	connector connector.Options
	onResult  ResultHandler
}

// New returns a Widget with no layout; call OnSurfaceResized before the
// first pointer event.
func New(opts ...Option) *Widget {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Widget{
		secret:    cfg.secret,
		log:       cfg.logger,
		connector: cfg.connector,
		onResult:  cfg.onResult,
	}
}

// OnSurfaceResized recomputes the layout for a width×height surface.
// An unchanged size is a no-op. Invalid dimensions drop the current layout and
// return layout.ErrBadSurface. The selection is left as recorded.
func (w *Widget) OnSurfaceResized(width, height int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.layout.SameSize(width, height) {
		return nil
	}
	l, err := layout.Compute(width, height)
	if err != nil {
		w.layout = nil
		w.log.Debug("surface rejected", "width", width, "height", height, "err", err)
		return err
	}
	w.layout = l
	w.log.Debug("layout computed",
		"width", width, "height", height,
		"cell", l.CellSize, "radius", l.HitRadius,
		"offsetX", l.OffsetX, "offsetY", l.OffsetY)

	return nil
}

// OnPointerDown starts a gesture when (x, y) hits a node.
func (w *Widget) OnPointerDown(x, y float64) Result {
	w.mu.Lock()
	defer w.mu.Unlock()

	return Result{Redraw: w.machine.Down(w.layout, x, y)}
}

// OnPointerMove extends the gesture in progress.
func (w *Widget) OnPointerMove(x, y float64) Result {
	w.mu.Lock()
	defer w.mu.Unlock()

	return Result{Redraw: w.machine.Move(w.layout, x, y)}
}

// OnPointerUp ends the gesture and evaluates it against the secret. The
// result handler, if any, is called with Match or Mismatch. The release
// position is not hit-tested.
func (w *Widget) OnPointerUp(_, _ float64) Result {
	w.mu.Lock()
	outcome, redraw := w.machine.Up(w.secret)
	traced := w.machine.Selection()
	handler := w.onResult
	w.mu.Unlock()

	if outcome != pattern.None {
		w.log.Debug("gesture evaluated", "outcome", outcome, "nodes", len(traced))
		if handler != nil {
			handler(outcome, traced)
		}
	}

	return Result{Redraw: redraw, Outcome: outcome}
}

// SetSecret replaces the pattern future gestures are compared with.
func (w *Widget) SetSecret(s pattern.Secret) {
	w.mu.Lock()
	w.secret = s
	w.mu.Unlock()
	w.log.Debug("secret replaced", "nodes", s.Len())
}

// Secret returns the current pattern.
func (w *Widget) Secret() pattern.Secret {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.secret
}

// MarkSelectionAsError shows every selected node in the Error state.
func (w *Widget) MarkSelectionAsError() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.machine.MarkSelectionAsError()
}

// ResetSelection clears the selection and returns every node to Normal.
func (w *Widget) ResetSelection() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.machine.ResetSelection()
}

// Selection returns the selected node indices in selection order.
func (w *Widget) Selection() []int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.machine.Selection()
}

// Phase reports whether a drag is in progress.
func (w *Widget) Phase() gesture.Phase {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.machine.Phase()
}

// Layout returns the current layout, or nil before a valid resize.
// The returned value is immutable.
func (w *Widget) Layout() *layout.Layout {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.layout
}

// RenderModel returns a snapshot of what to draw.
// Complexity: O(9 + len(selection)).
func (w *Widget) RenderModel() RenderModel {
	w.mu.RLock()
	defer w.mu.RUnlock()

	selection := w.machine.Selection()
	l := w.layout
	if l == nil {
		return RenderModel{Selection: selection}
	}

	states := w.machine.States()
	centers := l.Centers()
	nodes := make([]NodeView, 0, layout.NodeCount)
	for _, n := range grid.Nodes() {
		nodes = append(nodes, NodeView{
			Node:   n,
			Center: centers[n.Index],
			State:  states[n.Index],
		})
	}

	return RenderModel{
		Ready:      true,
		Width:      l.Width,
		Height:     l.Height,
		HitRadius:  l.HitRadius,
		Nodes:      nodes,
		Connectors: connector.Build(l, selection, w.connector),
		Selection:  selection,
	}
}
