// Package core holds the terminal-agnostic pieces shared by games and the
// platform: the cell screen, input frames, and runtime config. It does not
// import Bubble Tea, so games can be stepped and rendered in plain tests.
package core

// Rect is a box of cells. X and Y are the top-left corner; Right and
// Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredAt returns a w by h box whose centre cell is (cx, cy). Odd
// sizes put the extra cell on the right and bottom.
func CenteredAt(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Inner is the area inside a one-cell border. It is empty for boxes
// narrower or shorter than three cells.
func (r Rect) Inner() Rect {
	if r.W < 3 || r.H < 3 {
		return Rect{X: r.X + 1, Y: r.Y + 1}
	}
	return Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

// Within reports whether r lies entirely on a width by height screen.
func (r Rect) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= width && r.Bottom() <= height
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
