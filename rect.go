package ninepatch

import (
	"image"
	"math"

	"gioui.org/f32"
)

// Rect is a float rectangle in a patch's local space.
type Rect struct {
	Min, Max f32.Point
}

// Dx returns the width of r.
func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height of r.
func (r Rect) Size() f32.Point {
	return f32.Pt(r.Dx(), r.Dy())
}

// Canon returns r with Min and Max swapped where necessary so that
// Min <= Max on both axes.
func (r Rect) Canon() Rect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Union returns the smallest rectangle containing r and s. Both are
// canonicalized first.
func (r Rect) Union(s Rect) Rect {
	r, s = r.Canon(), s.Canon()
	return Rect{
		Min: f32.Pt(min32(r.Min.X, s.Min.X), min32(r.Min.Y, s.Min.Y)),
		Max: f32.Pt(max32(r.Max.X, s.Max.X), max32(r.Max.Y, s.Max.Y)),
	}
}

// Scale multiplies both corners of r component-wise by s.
func (r Rect) Scale(s f32.Point) Rect {
	return Rect{
		Min: f32.Pt(r.Min.X*s.X, r.Min.Y*s.Y),
		Max: f32.Pt(r.Max.X*s.X, r.Max.Y*s.Y),
	}
}

// Round converts r to integer pixel coordinates.
func (r Rect) Round() image.Rectangle {
	return image.Rect(
		int(math.Round(float64(r.Min.X))),
		int(math.Round(float64(r.Min.Y))),
		int(math.Round(float64(r.Max.X))),
		int(math.Round(float64(r.Max.Y))),
	)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
