package ninepatch

import "gioui.org/f32"

// Update lays the tiles out against the current target dimensions.
func (np *Patch) Update() {
	np.layout()
}

// Resize sets both target dimensions and lays the tiles out.
//
// While tiles are still loading the dimensions are recorded and used by the
// layout pass that runs once loading completes.
func (np *Patch) Resize(width, height float32) {
	np.target = f32.Pt(width, height)
	np.layout()
}

// SetSlicedWidth sets the target width, keeping the target height, and lays
// the tiles out.
func (np *Patch) SetSlicedWidth(width float32) {
	np.target.X = width
	np.layout()
}

// SetSlicedHeight sets the target height, keeping the target width, and lays
// the tiles out.
func (np *Patch) SetSlicedHeight(height float32) {
	np.target.Y = height
	np.layout()
}

// layout positions all nine tiles and stretches the edges and center to fill
// the target rectangle. Corners keep their natural size.
//
// Each step may read geometry written by a previous step, so the order
// matters: the top and left edges are settled before the center and the
// opposite edges copy their extents.
//
// Sizes are not clamped: a target smaller than MinSize yields negative edge
// and center sizes.
func (np *Patch) layout() {
	if !np.IsReady() {
		return
	}
	var (
		w, h = np.target.X, np.target.Y
		t    = &np.tiles
	)

	top := &t[Top]
	top.Position = f32.Pt(t[TopLeft].Width(), 0)
	top.SetWidth(w - top.Position.X - t[TopRight].Width())

	t[TopRight].Position = f32.Pt(w, 0)

	left := &t[Left]
	left.Position = f32.Pt(0, t[TopLeft].Height())
	left.SetHeight(h - left.Position.Y - t[BottomLeft].Height())

	center := &t[Center]
	center.Position = f32.Pt(top.Position.X, left.Position.Y)
	center.SetHeight(left.Height())
	center.SetWidth(top.Width())

	right := &t[Right]
	right.Position = f32.Pt(w, left.Position.Y)
	right.SetHeight(left.Height())

	t[BottomLeft].Position = f32.Pt(0, h)

	bottom := &t[Bottom]
	bottom.Position = f32.Pt(top.Position.X, h)
	bottom.SetWidth(top.Width())

	t[BottomRight].Position = f32.Pt(w, h)

	for _, fn := range np.onUpdate {
		fn()
	}
}
