package ui

import "math"

type Vec struct {
	X, Y float64
}

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Len() float64  { return math.Hypot(v.X, v.Y) }

// Rect is an axis aligned box. Min is inclusive, Max exclusive.
type Rect struct {
	X, Y, W, H float64
}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Right() float64  { return r.X + r.W }
