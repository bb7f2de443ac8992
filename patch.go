// Package ninepatch implements a nine-slice layout: nine image tiles (four
// fixed corners, four stretchable edges and a stretchable center) composed
// into a rectangle of arbitrary size.
// https://developer.android.com/guide/topics/graphics/drawables#nine-patch
//
// A Patch only computes tile geometry. Loading images is delegated to a
// Provider, and drawing is left to the host (see the widget and compose
// packages).
//
// A Patch is not safe for concurrent use. Providers deliver load
// notifications on the goroutine that owns the patch.
package ninepatch

import (
	"strconv"
	"strings"

	"gioui.org/f32"
)

// Placeholder is replaced by the tile number (1 through 9) in a template.
const Placeholder = "*"

// ScaleMode selects what the width and height setters do.
type ScaleMode byte

const (
	// ModeNinePatch resizes the slices to the requested dimensions.
	ModeNinePatch ScaleMode = iota
	// ModeDefault scales the whole patch uniformly about its bounds.
	ModeDefault
)

func (m ScaleMode) String() string {
	switch m {
	case ModeNinePatch:
		return "ninepatch"
	case ModeDefault:
		return "default"
	}
	return "invalid"
}

// Options configures a Patch.
type Options struct {
	// Width and Height are the initial target dimensions.
	Width, Height float32
	// Template names the tile sources. The first Placeholder is replaced by
	// 1 through 9, in role order.
	Template string
	// Sources names each tile explicitly. Used when Template is empty.
	Sources [9]string
	// Frames resolves sources by logical frame name instead of raw path.
	Frames bool
	// Mode defaults to ModeNinePatch.
	Mode ScaleMode
}

// ref returns the source identifier for the given role.
func (o Options) ref(r Role) string {
	if o.Template == "" {
		return o.Sources[r]
	}
	return strings.Replace(o.Template, Placeholder, strconv.Itoa(int(r)+1), 1)
}

// Patch is a nine-slice layout over nine tiles.
type Patch struct {
	// Alpha is the host opacity. The patch never writes it; see Opacity.
	Alpha float32
	// Scale applied to the whole patch by the host.
	Scale f32.Point

	tiles  [9]Tile
	target f32.Point
	// requested records the last value given to a scaled setter.
	requested f32.Point
	mode      ScaleMode
	// loaded counts tiles whose source has finished loading.
	loaded int
	ready  chan struct{}
	// onReady fires once, on the transition to ready.
	onReady  func()
	onUpdate []func()
}

// New allocates a patch and requests its nine tiles from p.
//
// Tiles that are already loaded count immediately. The rest are awaited via
// Source.OnLoad. The patch lays itself out once all nine are loaded.
func New(p Provider, opts Options) *Patch {
	np := &Patch{
		Alpha:  1,
		Scale:  f32.Pt(1, 1),
		target: f32.Pt(opts.Width, opts.Height),
		mode:   opts.Mode,
		ready:  make(chan struct{}),
	}
	// Far-side tiles are positioned by their far edge so they stay pinned to
	// the right and bottom boundaries.
	np.tiles[TopRight].Anchor = f32.Pt(1, 0)
	np.tiles[Right].Anchor = f32.Pt(1, 0)
	np.tiles[BottomLeft].Anchor = f32.Pt(0, 1)
	np.tiles[Bottom].Anchor = f32.Pt(0, 1)
	np.tiles[BottomRight].Anchor = f32.Pt(1, 1)
	for _, r := range Roles {
		ref := opts.ref(r)
		var src Source
		if opts.Frames {
			src = p.Frame(ref)
		} else {
			src = p.Image(ref)
		}
		np.tiles[r].Source = src
		if src.Loaded() {
			np.loaded++
		} else {
			src.OnLoad(np.tileLoaded)
		}
	}
	Logger().Debug("ninepatch: created",
		"template", opts.Template,
		"frames", opts.Frames,
		"mode", opts.Mode,
		"loaded", np.loaded)

	if np.IsReady() {
		np.becomeReady()
	}
	return np
}

// At returns the tile for role r.
func (np *Patch) At(r Role) *Tile {
	return &np.tiles[r]
}

// Head returns the top edge tile.
func (np *Patch) Head() *Tile {
	return &np.tiles[Top]
}

// Body returns the center tile.
func (np *Patch) Body() *Tile {
	return &np.tiles[Center]
}

// Mode reports the scale mode selected at construction.
func (np *Patch) Mode() ScaleMode {
	return np.mode
}

// Target returns the target dimensions.
func (np *Patch) Target() f32.Point {
	return np.target
}

// Requested returns the last values given to SetScaledWidth and
// SetScaledHeight.
func (np *Patch) Requested() f32.Point {
	return np.requested
}

// MinSize returns the smallest target that keeps every edge and the center
// at a non-negative size. Smaller targets are laid out anyway.
func (np *Patch) MinSize() f32.Point {
	return f32.Pt(
		np.tiles[TopLeft].Width()+np.tiles[TopRight].Width(),
		np.tiles[TopLeft].Height()+np.tiles[BottomLeft].Height(),
	)
}

// LocalBounds returns the tight bounding box of all tiles in local space,
// before Scale is applied.
func (np *Patch) LocalBounds() Rect {
	b := np.tiles[0].Rect().Canon()
	for ii := 1; ii < len(np.tiles); ii++ {
		b = b.Union(np.tiles[ii].Rect())
	}
	return b
}
