package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lockpattern/geom"
)

// Terminal cells are roughly twice as tall as they are wide, so one cell
// covers cellW×cellH surface units and circles stay round on screen.
const (
	cellW = 2.0
	cellH = 4.0
)

const (
	glyphRing  = '•'
	glyphDot   = '●'
	glyphLine  = '·'
	glyphArrow = '◆'
)

type cell struct {
	r rune
	c color.Color
}

// cellCanvas rasterizes onto a grid of terminal cells. Later drawing calls
// overwrite earlier ones, matching the painter's order of render.Draw.
type cellCanvas struct {
	cols, rows int
	cells      []cell
}

func newCellCanvas(cols, rows int) *cellCanvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	return &cellCanvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
}

// surfaceSize is the drawing surface, in surface units, covered by the grid.
func surfaceSize(cols, rows int) (int, int) {
	return int(float64(cols) * cellW), int(float64(rows) * cellH)
}

// toSurface maps the centre of terminal cell (col,row) to surface units.
func toSurface(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * cellW, (float64(row) + 0.5) * cellH
}

func (cv *cellCanvas) plot(p geom.Point, r rune, c color.Color) {
	col := int(math.Floor(p.X / cellW))
	row := int(math.Floor(p.Y / cellH))
	if col < 0 || col >= cv.cols || row < 0 || row >= cv.rows {
		return
	}
	cv.cells[row*cv.cols+col] = cell{r: r, c: c}
}

// at returns the glyph at (col,row), or a space.
func (cv *cellCanvas) at(col, row int) rune {
	if col < 0 || col >= cv.cols || row < 0 || row >= cv.rows {
		return ' '
	}
	if r := cv.cells[row*cv.cols+col].r; r != 0 {
		return r
	}

	return ' '
}

// StrokeCircle walks the circumference; circles smaller than a cell collapse
// into a single dot at the centre.
func (cv *cellCanvas) StrokeCircle(center geom.Point, radius, _ float64, c color.Color) {
	if radius < cellH/2 {
		cv.plot(center, glyphDot, c)
		return
	}
	steps := int(math.Ceil(2*math.Pi*radius/(cellW/2))) + 1
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		cv.plot(center.Add(radius*math.Cos(a), radius*math.Sin(a)), glyphRing, c)
	}
}

// Line samples the segment at half-cell spacing.
func (cv *cellCanvas) Line(from, to geom.Point, _ float64, c color.Color) {
	d := from.DistanceTo(to)
	steps := int(math.Ceil(d/(cellW/2))) + 1
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		cv.plot(from.Add((to.X-from.X)*f, (to.Y-from.Y)*f), glyphLine, c)
	}
}

// FillPolygon marks the first vertex (the arrow tip) plus every cell whose
// centre lies inside the polygon.
func (cv *cellCanvas) FillPolygon(pts []geom.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for row := int(minY / cellH); row <= int(maxY/cellH); row++ {
		for col := int(minX / cellW); col <= int(maxX/cellW); col++ {
			x, y := toSurface(col, row)
			if insideConvex(pts, x, y) {
				cv.plot(geom.Pt(x, y), glyphArrow, c)
			}
		}
	}
	cv.plot(pts[0], glyphArrow, c)
}

// insideConvex is the same-side cross-product test for convex polygons.
func insideConvex(pts []geom.Point, x, y float64) bool {
	var pos, neg bool
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}

	return true
}

// String renders the grid with one lipgloss style per run of equal colour.
func (cv *cellCanvas) String() string {
	var b strings.Builder
	for row := 0; row < cv.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var runColor color.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(runColor))).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < cv.cols; col++ {
			cl := cv.cells[row*cv.cols+col]
			if cl.c != runColor {
				flush()
				runColor = cl.c
			}
			if cl.r == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(cl.r)
			}
		}
		flush()
	}

	return b.String()
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()

	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
