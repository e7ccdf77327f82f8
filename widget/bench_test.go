package widget_test

import (
	"testing"

	"github.com/katalvlaran/lockpattern/pattern"
	"github.com/katalvlaran/lockpattern/widget"
)

// BenchmarkGesture measures a full press, drag and release over five nodes.
func BenchmarkGesture(b *testing.B) {
	w := widget.New(widget.WithSecret(pattern.MustSecret(0, 1, 2, 5, 8)))
	if err := w.OnSurfaceResized(480, 800); err != nil {
		b.Fatalf("setup OnSurfaceResized failed: %v", err)
	}
	l := w.Layout()
	trace := []int{0, 1, 2, 5, 8}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, _ := l.Center(trace[0])
		w.OnPointerDown(c.X, c.Y)
		for _, n := range trace[1:] {
			c, _ = l.Center(n)
			w.OnPointerMove(c.X, c.Y)
		}
		w.OnPointerUp(c.X, c.Y)
	}
}

// BenchmarkRenderModel measures snapshotting a frame with eight connectors.
func BenchmarkRenderModel(b *testing.B) {
	w := widget.New()
	if err := w.OnSurfaceResized(480, 800); err != nil {
		b.Fatalf("setup OnSurfaceResized failed: %v", err)
	}
	l := w.Layout()
	c, _ := l.Center(0)
	w.OnPointerDown(c.X, c.Y)
	for _, n := range []int{1, 2, 5, 4, 3, 6, 7, 8} {
		c, _ = l.Center(n)
		w.OnPointerMove(c.X, c.Y)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.RenderModel()
	}
}
