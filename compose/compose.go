// Package compose rasterizes a nine-patch layout into an image.
package compose

import (
	"image"
	"image/color"
	"image/draw"

	"git.sr.ht/~gioverse/ninepatch"
	xdraw "golang.org/x/image/draw"
)

// Options configures Draw.
type Options struct {
	// Scaler stretches the edge and center tiles. Defaults to
	// xdraw.ApproxBiLinear.
	Scaler xdraw.Scaler
	// Op is the compositing operator. Defaults to draw.Over.
	Op draw.Op
}

func (o *Options) scaler() xdraw.Scaler {
	if o == nil || o.Scaler == nil {
		return xdraw.ApproxBiLinear
	}
	return o.Scaler
}

func (o *Options) op() draw.Op {
	if o == nil {
		return draw.Over
	}
	return o.Op
}

// Draw paints the patch into dst with its local origin at the given point.
//
// Tiles are drawn in role order, so later tiles overlap earlier ones when
// corners exceed the target. Tiles whose source is not an Imager, and tiles
// with an empty or negative size, are skipped. Nothing is drawn until the
// patch is ready.
func Draw(dst draw.Image, at image.Point, np *ninepatch.Patch, opts *Options) {
	alpha := np.Opacity()
	if alpha <= 0 {
		return
	}
	var (
		scaler = opts.scaler()
		xopts  *xdraw.Options
	)
	if alpha < 1 {
		xopts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha16{A: uint16(alpha * 0xffff)}),
		}
	}
	for _, r := range ninepatch.Roles {
		tile := np.At(r)
		imager, ok := tile.Source.(ninepatch.Imager)
		if !ok {
			continue
		}
		src := imager.Image()
		if src == nil {
			continue
		}
		rect := tile.Rect()
		if rect.Empty() {
			continue
		}
		target := rect.Scale(np.Scale).Canon().Round().Add(at)
		if target.Empty() {
			continue
		}
		if target.Size() == src.Bounds().Size() && xopts == nil {
			draw.Draw(dst, target, src, src.Bounds().Min, opts.op())
			continue
		}
		scaler.Scale(dst, target, src, src.Bounds(), opts.op(), xopts)
	}
}

// Render allocates an image large enough for the patch's scaled bounds and
// draws the patch into it.
func Render(np *ninepatch.Patch, opts *Options) *image.NRGBA {
	b := np.LocalBounds().Scale(np.Scale).Canon().Round()
	dst := image.NewNRGBA(image.Rectangle{Max: b.Size()})
	Draw(dst, b.Min.Mul(-1), np, opts)
	return dst
}
