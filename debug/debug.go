/*
Package debug provides tools for debugging nine-patch layouts in Gio.
*/
package debug

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"git.sr.ht/~gioverse/ninepatch"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Outline traces a small black outline around the provided widget.
func Outline(gtx C, w func(gtx C) D) D {
	return widget.Border{
		Color: color.NRGBA{A: 255},
		Width: unit.Dp(1),
	}.Layout(gtx, w)
}

// Hue returns the outline color used for a role. Roles are spread evenly
// around the color wheel.
func Hue(r ninepatch.Role) color.NRGBA {
	return ToNRGBA(colorful.Hsv(float64(r)*360/float64(len(ninepatch.Roles)), 0.8, 0.9))
}

// ToNRGBA converts a colorful.Color to the nearest representable color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Tiles outlines every tile of the patch in its role's hue, in the patch's
// scaled local space. Tiles with an empty or negative size are skipped.
func Tiles(gtx C, np *ninepatch.Patch) D {
	for _, r := range ninepatch.Roles {
		rect := np.At(r).Rect()
		if rect.Empty() {
			continue
		}
		px := rect.Scale(np.Scale).Round()
		outlineRect(gtx, px, Hue(r))
	}
	b := np.LocalBounds().Scale(np.Scale).Canon().Round()
	return D{Size: b.Max}
}

func outlineRect(gtx C, r image.Rectangle, c color.NRGBA) {
	defer op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(r.Min.X), float32(r.Min.Y)))).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(r.Size())
	widget.Border{Color: c, Width: unit.Dp(1)}.Layout(gtx, func(gtx C) D {
		return D{Size: gtx.Constraints.Min}
	})
}

// Checker lays out w over a checkerboard of cell-sized squares, making
// translucent tiles visible.
func Checker(gtx C, cell unit.Dp, w layout.Widget) D {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return layout.Stack{}.Layout(
		gtx,
		layout.Expanded(func(gtx C) D {
			size := gtx.Metric.Dp(cell)
			if size < 1 {
				size = 1
			}
			light := color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
			dark := color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
			for yy := 0; yy < dims.Size.Y; yy += size {
				for xx := 0; xx < dims.Size.X; xx += size {
					c := light
					if (xx/size+yy/size)%2 == 1 {
						c = dark
					}
					cellRect(gtx, image.Rect(xx, yy, xx+size, yy+size).Intersect(image.Rectangle{Max: dims.Size}), c)
				}
			}
			return D{Size: dims.Size}
		}),
		layout.Stacked(func(gtx C) D {
			call.Add(gtx.Ops)
			return dims
		}),
	)
}

func cellRect(gtx C, r image.Rectangle, c color.NRGBA) {
	defer clip.Rect(r).Push(gtx.Ops).Pop()
	paint.ColorOp{Color: c}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}
