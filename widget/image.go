package widget

import (
	"image"
	"image/color"
	"image/draw"

	"gioui.org/op/paint"
)

// CachedImage is a cacheable image operation for one tile.
type CachedImage struct {
	op    paint.ImageOp
	src   image.Image
	alpha float32
}

// Changer can report that is has changed since the last call.
type Changer interface {
	Changed() bool
}

// ToNRGBA can render an image.NRGBA image.
type ToNRGBA interface {
	ToNRGBA() *image.NRGBA
}

// Cache the image at the given opacity.
//
// The operation is recomputed only when the source or opacity differ from the
// previous call, or when the image implements Changer and reports a change.
//
// If image implements ToNRGBA, the *image.NRGBA will be used to compute the
// image operation. This is an optimization since Gio uses a fast-path for
// image.NRGBA images.
func (img *CachedImage) Cache(src image.Image, alpha float32) {
	if src == nil {
		return
	}
	changed := false
	if changer, ok := src.(Changer); ok {
		changed = changer.Changed()
	}
	if !changed && img.src == src && img.alpha == alpha && img.op != (paint.ImageOp{}) {
		return
	}
	img.src, img.alpha = src, alpha
	img.op = paint.NewImageOp(bake(src, alpha))
}

// Op returns the concrete image operation.
func (img *CachedImage) Op() paint.ImageOp {
	return img.op
}

// bake converts src to the form uploaded to the GPU, fading it when alpha is
// below 1.
func bake(src image.Image, alpha float32) image.Image {
	if nrgba, ok := src.(ToNRGBA); ok {
		src = nrgba.ToNRGBA()
	}
	if alpha >= 1 {
		return src
	}
	var (
		b     = src.Bounds()
		faded = image.NewNRGBA(image.Rectangle{Max: b.Size()})
		mask  = image.NewUniform(color.Alpha16{A: uint16(alpha * 0xffff)})
	)
	draw.DrawMask(faded, faded.Bounds(), src, b.Min, mask, image.Point{}, draw.Src)
	return faded
}
