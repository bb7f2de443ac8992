package atlas

import (
	"image"
	"image/color"
)

// Inset is the padding, in pixels, between the edges of a sheet (excluding
// the marker border) and its content area.
type Inset struct {
	Top, Right, Bottom, Left int
}

// Sheet is a decoded 9-Patch image: the pixels with the marker border erased
// and the grid the markers describe.
type Sheet struct {
	Image *image.NRGBA
	// Content is the padding reserved around content drawn atop the patch.
	Content Inset
	Grid    Grid
	// Border is the width of the marker border excluded from every region.
	Border int
}

// Regions returns the nine source rectangles of the sheet in role order.
func (s Sheet) Regions() [9]image.Rectangle {
	return s.Grid.Regions(s.Image.Bounds().Inset(s.Border))
}

// MinSize returns the smallest size a patch built from the sheet can take
// without its edges and center turning negative.
func (s Sheet) MinSize() image.Point {
	return s.Grid.Static()
}

// DecodeNinePatch from source image.
//
// Note: Any colored pixel around the border will be considered a 9-Patch marker.
func DecodeNinePatch(src image.Image) Sheet {
	var (
		b      = src.Bounds()
		inset  = Inset{}
		x1, x2 = 0, 0
		y1, y2 = 0, 0
	)
	if b.Empty() {
		return Sheet{Image: image.NewNRGBA(b)}
	}
	right := walk(src, b.Max.X-1, vertical)
	if right.IsValid() {
		inset.Top = right.Start - 1
		inset.Bottom = b.Dy() - right.End - 1
	}
	bottom := walk(src, b.Max.Y-1, horizontal)
	if bottom.IsValid() {
		inset.Left = bottom.Start - 1
		inset.Right = b.Dx() - bottom.End - 1
	}
	left := walk(src, b.Min.X, vertical)
	if left.IsValid() {
		y1, y2 = left.Start-1, b.Dy()-left.End-1
	}
	top := walk(src, b.Min.Y, horizontal)
	if top.IsValid() {
		x1, x2 = top.Start-1, b.Dx()-top.End-1
	}
	return Sheet{
		Image:   eraseBorder(src),
		Content: inset,
		Border:  1,
		Grid: Grid{
			Size: b.Inset(1).Size(),
			X1:   x1, X2: x2,
			Y1: y1, Y2: y2,
		},
	}
}

// eraseBorder clears the 1px border around the image containing the 9-Patch
// region specifiers (1px black lines).
func eraseBorder(src image.Image) *image.NRGBA {
	var (
		b   = src.Bounds()
		out = image.NewNRGBA(b)
	)
	for yy := b.Min.Y; yy < b.Max.Y; yy++ {
		for xx := b.Min.X; xx < b.Max.X; xx++ {
			out.Set(xx, yy, src.At(xx, yy))
		}
	}
	for xx := b.Min.X; xx < b.Max.X; xx++ {
		out.SetNRGBA(xx, b.Min.Y, color.NRGBA{})
		out.SetNRGBA(xx, b.Max.Y-1, color.NRGBA{})
	}
	for yy := b.Min.Y; yy < b.Max.Y; yy++ {
		out.SetNRGBA(b.Min.X, yy, color.NRGBA{})
		out.SetNRGBA(b.Max.X-1, yy, color.NRGBA{})
	}
	return out
}

// line encodes a one-dimensional run of marker pixels, relative to the
// start of the walked row or column.
type line struct {
	Start, End int
}

func (l line) IsValid() bool {
	return l.Start > -1 && l.End > -1
}

// axis selects the direction of a walk.
type axis bool

const (
	horizontal axis = false
	vertical   axis = true
)

// walk pixels in the source image along the given axis, at offset along the
// cross axis, returning the first run of colored pixels.
//
// NOTE(jfm): in time we may want tighter control over what is considered
// "colored". For now, any color that is not zero will suffice.
func walk(src image.Image, offset int, dir axis) line {
	var (
		b     = src.Bounds()
		start = b.Min.X
		end   = b.Max.X
		l     = line{Start: -1, End: -1}
	)
	if dir == vertical {
		start, end = b.Min.Y, b.Max.Y
	}
	for ii := start; ii < end; ii++ {
		pt := image.Pt(ii, offset)
		if dir == vertical {
			pt = image.Pt(offset, ii)
		}
		r, g, bl, a := src.At(pt.X, pt.Y).RGBA()
		var (
			colorIsSet = r > 0 || g > 0 || bl > 0 || a > 0
			startIsSet = l.Start > -1
		)
		if colorIsSet && !startIsSet {
			l.Start = ii - start
		}
		if !colorIsSet && startIsSet {
			l.End = ii - start
			break
		}
	}
	if l.Start > -1 && l.End < 0 {
		// Marker runs to the end of the row.
		l.End = end - start
	}
	return l
}
