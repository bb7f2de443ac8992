package atlas

import "image"

// Grid locates the four slicing lines of a sheet. Lines are measured in
// pixels from the matching edge of the sliced area.
type Grid struct {
	// Size of the sliced area.
	Size image.Point
	// X1 is the left column width, X2 the right column width.
	X1, X2 int
	// Y1 is the top row height, Y2 the bottom row height.
	Y1, Y2 int
}

// Static returns the size of the fixed corners combined, clamped to Size
// the same way Regions clamps its grid lines. A patch drawn from the grid
// cannot shrink below it.
func (g Grid) Static() image.Point {
	rs := g.Regions(image.Rectangle{Max: g.Size})
	return image.Pt(
		rs[0].Dx()+rs[2].Dx(),
		rs[0].Dy()+rs[6].Dy(),
	)
}

// Stretch returns the size of the stretchable center, which is what remains
// of Size once the corners are taken out. It is never negative.
func (g Grid) Stretch() image.Point {
	return g.Regions(image.Rectangle{Max: g.Size})[4].Size()
}

// Regions divides r into nine rectangles in row-major order: top-left, top,
// top-right, left, center, right, bottom-left, bottom, bottom-right.
//
// Grid lines falling outside r are clamped to it, so regions may be empty
// but never extend past r.
func (g Grid) Regions(r image.Rectangle) [9]image.Rectangle {
	var (
		xs = [4]int{r.Min.X, clamp(r.Min.X+g.X1, r.Min.X, r.Max.X), 0, r.Max.X}
		ys = [4]int{r.Min.Y, clamp(r.Min.Y+g.Y1, r.Min.Y, r.Max.Y), 0, r.Max.Y}
	)
	xs[2] = clamp(r.Max.X-g.X2, xs[1], r.Max.X)
	ys[2] = clamp(r.Max.Y-g.Y2, ys[1], r.Max.Y)
	var out [9]image.Rectangle
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = image.Rect(xs[col], ys[row], xs[col+1], ys[row+1])
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
