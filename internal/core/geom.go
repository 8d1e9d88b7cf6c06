// Package core holds the grid, input and state types shared by the game
// and the terminal front end. It does not import Bubble Tea.
package core

// Rect is a cell-aligned region of the grid.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the region of w by h cells starting at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the region.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the region.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether cell (x, y) lies in the region.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp pins v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// ClampF is Clamp for float64.
func ClampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Chebyshev returns the king-move distance between two cells.
func Chebyshev(ax, ay, bx, by int) int {
	return max(abs(ax-bx), abs(ay-by))
}
