// Package widget is the host-facing surface of the lock pattern core.
//
// What:
//
//   - OnSurfaceResized computes the grid layout once per surface size.
//   - OnPointerDown / OnPointerMove / OnPointerUp feed the gesture machine and
//     always ask the host to redraw.
//   - RenderModel returns a read-only snapshot: the nine nodes with centre and
//     state, the hit radius and the connectors of the current selection.
//   - SetSecret replaces the pattern traced gestures are compared with.
//   - MarkSelectionAsError and ResetSelection let the host decide how a wrong
//     pattern is shown and for how long.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Event and resize methods take the
//	write lock; RenderModel and the accessors take the read lock. A resize
//	builds a complete layout first and swaps the pointer under the lock, so a
//	snapshot never sees a half-updated grid.
//
// Errors:
//
//   - layout.ErrBadSurface from OnSurfaceResized: the layout is dropped and
//     pointer events select nothing until a valid size arrives.
//
// Options:
//
//   - WithSecret, WithLogger, WithConnectorOptions, WithResultHandler.
//     Option constructors panic on nil or meaningless input.
package widget
