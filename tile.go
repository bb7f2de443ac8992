package ninepatch

import (
	"image"

	"gioui.org/f32"
)

// Role identifies the grid position of a tile. Roles are laid out row-major,
// so a Role doubles as the tile's index within the patch.
type Role int

const (
	TopLeft Role = iota
	Top
	TopRight
	Left
	Center
	Right
	BottomLeft
	Bottom
	BottomRight
)

// Roles lists every role in index order.
var Roles = [...]Role{
	TopLeft, Top, TopRight,
	Left, Center, Right,
	BottomLeft, Bottom, BottomRight,
}

func (r Role) String() string {
	switch r {
	case TopLeft:
		return "top-left"
	case Top:
		return "top"
	case TopRight:
		return "top-right"
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	case BottomLeft:
		return "bottom-left"
	case Bottom:
		return "bottom"
	case BottomRight:
		return "bottom-right"
	}
	return "invalid"
}

// IsCorner reports whether the role keeps its natural size.
func (r Role) IsCorner() bool {
	return r == TopLeft || r == TopRight || r == BottomLeft || r == BottomRight
}

// IsEdge reports whether the role stretches along exactly one axis.
func (r Role) IsEdge() bool {
	return r == Top || r == Left || r == Right || r == Bottom
}

// Source is the image behind a tile, owned by a Provider.
//
// Implementations must deliver OnLoad callbacks on the goroutine that drives
// the patch. They should not call back from within OnLoad itself, though a
// Patch copes if they do.
type Source interface {
	// Size reports the natural size of the image. Zero until loaded.
	Size() f32.Point
	// Loaded reports whether the image is ready.
	Loaded() bool
	// OnLoad registers fn to be called once the image has loaded.
	OnLoad(fn func())
}

// Provider creates tile sources.
type Provider interface {
	// Frame resolves a source by logical name, such as an atlas frame.
	Frame(name string) Source
	// Image resolves a source by raw path.
	Image(path string) Source
}

// Imager is implemented by sources that can be drawn.
type Imager interface {
	Image() image.Image
}

// Tile is one of the nine elements of a patch.
type Tile struct {
	// Source supplies the natural size and pixels.
	Source Source
	// Anchor is the normalized point within the tile that Position refers to.
	// (0,0) is the top-left corner, (1,1) the bottom-right corner.
	Anchor f32.Point
	// Position of the anchor in the patch's local space.
	Position f32.Point
	// width and height override the natural size once set.
	width, height       float32
	hasWidth, hasHeight bool
}

// Natural returns the intrinsic size of the tile's source.
func (t *Tile) Natural() f32.Point {
	if t.Source == nil {
		return f32.Point{}
	}
	return t.Source.Size()
}

// Width returns the displayed width.
func (t *Tile) Width() float32 {
	if t.hasWidth {
		return t.width
	}
	return t.Natural().X
}

// Height returns the displayed height.
func (t *Tile) Height() float32 {
	if t.hasHeight {
		return t.height
	}
	return t.Natural().Y
}

// Size returns the displayed size.
func (t *Tile) Size() f32.Point {
	return f32.Pt(t.Width(), t.Height())
}

// SetWidth overrides the displayed width. Negative values are kept as-is.
func (t *Tile) SetWidth(w float32) {
	t.width, t.hasWidth = w, true
}

// SetHeight overrides the displayed height. Negative values are kept as-is.
func (t *Tile) SetHeight(h float32) {
	t.height, t.hasHeight = h, true
}

// Rect returns the area covered by the tile in local space, taking the anchor
// into account. The rectangle is not canonicalized, so a negative size
// produces Max < Min.
func (t *Tile) Rect() Rect {
	sz := t.Size()
	min := f32.Pt(t.Position.X-t.Anchor.X*sz.X, t.Position.Y-t.Anchor.Y*sz.Y)
	return Rect{Min: min, Max: min.Add(sz)}
}

// Loaded reports whether the tile's source is ready.
func (t *Tile) Loaded() bool {
	return t.Source != nil && t.Source.Loaded()
}
