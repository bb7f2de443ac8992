// Package widget draws nine-patch layouts in Gio.
package widget

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"git.sr.ht/~gioverse/ninepatch"
	"git.sr.ht/~gioverse/ninepatch/atlas"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Surface is a 9-Patch themed rectangle container, that lays content in the
// content-area.
type Surface struct {
	Patch *ninepatch.Patch
	// Content is the padding, in pixels, between the patch edges and the
	// content. Typically taken from a decoded atlas.Sheet.
	Content atlas.Inset
	images  [9]CachedImage
}

// Layout content atop the patch.
//
// In ModeNinePatch the patch is resized to the content size plus padding.
// In ModeDefault it keeps its target and is only scaled by its host Scale.
func (s *Surface) Layout(gtx C, w layout.Widget) D {
	return layout.Stack{}.Layout(
		gtx,
		layout.Expanded(func(gtx C) D {
			size := gtx.Constraints.Min
			if s.Patch.Mode() == ninepatch.ModeNinePatch {
				target := f32.Pt(float32(size.X), float32(size.Y))
				if s.Patch.Target() != target {
					s.Patch.Resize(target.X, target.Y)
				}
			}
			s.paint(gtx)
			return D{Size: size}
		}),
		layout.Stacked(func(gtx C) D {
			return s.inset(gtx.Metric).Layout(gtx, w)
		}),
	)
}

// inset converts the pixel content padding to a layout.Inset.
func (s *Surface) inset(m unit.Metric) layout.Inset {
	ppdp := m.PxPerDp
	if ppdp == 0 {
		ppdp = 1
	}
	dp := func(px int) unit.Dp {
		return unit.Dp(float32(px) / ppdp)
	}
	return layout.Inset{
		Top:    dp(s.Content.Top),
		Right:  dp(s.Content.Right),
		Bottom: dp(s.Content.Bottom),
		Left:   dp(s.Content.Left),
	}
}

// paint each tile, stretching its image over the tile's rectangle.
func (s *Surface) paint(gtx C) {
	alpha := s.Patch.Opacity()
	if alpha <= 0 {
		return
	}
	defer op.Affine(f32.Affine2D{}.Scale(f32.Point{}, s.Patch.Scale)).Push(gtx.Ops).Pop()
	for _, r := range ninepatch.Roles {
		tile := s.Patch.At(r)
		imager, ok := tile.Source.(ninepatch.Imager)
		if !ok {
			continue
		}
		src := imager.Image()
		if src == nil {
			continue
		}
		rect := tile.Rect()
		sz := src.Bounds().Size()
		if rect.Empty() || sz.X == 0 || sz.Y == 0 {
			continue
		}
		s.images[r].Cache(src, alpha)
		layoutTile(gtx, s.images[r].Op(), rect, sz)
	}
}

// layoutTile paints src, of natural size sz, stretched over rect.
func layoutTile(gtx C, src paint.ImageOp, rect ninepatch.Rect, sz image.Point) {
	tr := f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(rect.Dx()/float32(sz.X), rect.Dy()/float32(sz.Y))).
		Offset(rect.Min)
	defer op.Affine(tr).Push(gtx.Ops).Pop()
	defer clip.Rect{Max: sz}.Push(gtx.Ops).Pop()
	src.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}
