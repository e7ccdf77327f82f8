// Package lockpattern is a headless 3×3 lock-pattern widget: the geometry,
// hit-testing and gesture logic behind the "connect the dots" unlock screen,
// with drawing left to whatever surface hosts it.
//
// What is lockpattern?
//
//	A small, thread-safe library plus two hosts that together provide:
//		• Layout: a square 3×3 grid centred on any surface size
//		• Hit-testing: strict point-in-circle tests against each node
//		• Gestures: press, drag and release folded into an ordered selection
//		• Comparison: the finished selection checked against a stored secret
//		• Connectors: lines and arrowheads between consecutive nodes
//		• Rendering: a painter-ordered draw pass over any Rasterizer
//
// Under the hood, everything is organized into small packages:
//
//	geom/      — Point and the distance / within-circle primitives
//	layout/    — surface size → cell size, hit radius and the nine centres
//	grid/      — node states, row-major indexing and HitTest
//	pattern/   — immutable Secret, Outcome and digit-string parsing
//	gesture/   — the Idle/Dragging state machine over a Selection
//	connector/ — arrowhead triangles between consecutive selected nodes
//	widget/    — the mutex-guarded facade a host drives with pointer events
//	render/    — Theme, Metrics and Draw over a Rasterizer
//	render/ggraster/ — a fogleman/gg Rasterizer with PNG export
//	config/    — ~/.lockpatternrc loading
//
// Two commands sit on top:
//
//	cmd/lockpattern         — interactive bubbletea lock screen in the terminal
//	cmd/lockpattern-render  — replays a trace headlessly and writes a PNG
//
// Quick ASCII example, trace 0-3-6-7 on the grid:
//
//	0   1   2
//	│
//	3   4   5
//	│
//	6───7   8
//
//	go get github.com/katalvlaran/lockpattern
package lockpattern
