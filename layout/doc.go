// Package layout places the nine nodes of a 3×3 lock pattern on a drawing
// surface of arbitrary size and orientation.
//
// What:
//
//   - Compute(width, height) derives a square drawing area centred on the
//     longer axis, a cell size, a shared hit radius and the nine node centres.
//   - A *Layout is immutable; a surface resize produces a brand new value which
//     callers swap in whole, so readers never observe a half-updated layout.
//
// Geometry (integer division, truncating toward zero):
//
//	short     = min(W, H)
//	OffsetY   = (H−W)/2   when H > W, else OffsetX = (W−H)/2
//	CellSize  = short / 3
//	HitRadius = short / 12
//	centre(r,c) = (OffsetX + CellSize·c + CellSize/2, OffsetY + CellSize·r + CellSize/2)
//
// Portrait 300×500 surface:
//
//	┌─────────┐ ← OffsetY = 100
//	│ 0  1  2 │
//	│ 3  4  5 │   CellSize = 100, HitRadius = 25
//	│ 6  7  8 │
//	└─────────┘
//
// Errors:
//
//   - ErrBadSurface: width or height below 1; no layout is produced.
//
// Complexity: Compute is O(1) (nine centres), Memory: O(1).
package layout
