package ringfinder

import "math"

// Rect is an axis-aligned hit area in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive so adjacent rects never overlap.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// Right returns the exclusive right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// cellRect builds a pixel rect from cell coordinates.
func cellRect(col, row, cols, rows int, cellW, cellH float64) Rect {
	return Rect{
		X: float64(col) * cellW,
		Y: float64(row) * cellH,
		W: float64(cols) * cellW,
		H: float64(rows) * cellH,
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrap maps i onto [0, n) so that n-1 follows 0 backwards and 0 follows n-1.
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
