package widget

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"git.sr.ht/~gioverse/ninepatch"
	"git.sr.ht/~gioverse/ninepatch/atlas"
)

type frames struct {
	*atlas.Atlas
}

func (frames) Image(string) ninepatch.Source {
	panic("unexpected image request")
}

// newPatch builds a ready patch of 4x4 frames.
func newPatch(mode ninepatch.ScaleMode) *ninepatch.Patch {
	var a atlas.Atlas
	for _, r := range ninepatch.Roles {
		a.Add(r.String(), image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	}
	opts := ninepatch.Options{Width: 20, Height: 20, Frames: true, Mode: mode}
	for _, r := range ninepatch.Roles {
		opts.Sources[r] = r.String()
	}
	return ninepatch.New(frames{&a}, opts)
}

func TestSurfaceResizesToContent(t *testing.T) {
	var (
		ops     op.Ops
		updates int
		s       = Surface{
			Patch:   newPatch(ninepatch.ModeNinePatch),
			Content: atlas.Inset{Top: 2, Right: 3, Bottom: 4, Left: 5},
		}
		gtx = layout.Context{
			Ops:         &ops,
			Metric:      unit.Metric{PxPerDp: 1},
			Constraints: layout.Constraints{Max: image.Pt(500, 500)},
		}
	)
	s.Patch.OnUpdate(func() { updates++ })
	dims := s.Layout(gtx, func(gtx C) D {
		return D{Size: image.Pt(50, 30)}
	})
	if want := image.Pt(58, 36); dims.Size != want {
		t.Fatalf("dims: got %v, want %v", dims.Size, want)
	}
	if got := s.Patch.Target(); got != f32.Pt(58, 36) {
		t.Fatalf("target: got %v, want (58,36)", got)
	}
	if got := s.Patch.Body().Size(); got != f32.Pt(50, 28) {
		t.Fatalf("center: got %v, want (50,28)", got)
	}
	// An unchanged size must not trigger another layout pass.
	ops.Reset()
	s.Layout(gtx, func(gtx C) D {
		return D{Size: image.Pt(50, 30)}
	})
	if updates != 1 {
		t.Fatalf("got %d layout passes, want 1", updates)
	}
}

func TestSurfaceDefaultModeKeepsTarget(t *testing.T) {
	var (
		ops op.Ops
		s   = Surface{Patch: newPatch(ninepatch.ModeDefault)}
		gtx = layout.Context{
			Ops:         &ops,
			Metric:      unit.Metric{PxPerDp: 1},
			Constraints: layout.Exact(image.Pt(80, 80)),
		}
	)
	s.Layout(gtx, func(gtx C) D { return D{Size: gtx.Constraints.Min} })
	if got := s.Patch.Target(); got != f32.Pt(20, 20) {
		t.Fatalf("target: got %v, want (20,20)", got)
	}
}

func TestCachedImage(t *testing.T) {
	var (
		img CachedImage
		src = image.NewNRGBA(image.Rect(0, 0, 2, 2))
	)
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.Cache(src, 1)
	first := img.Op()
	if first == (paint.ImageOp{}) {
		t.Fatalf("image not cached")
	}
	img.Cache(src, 1)
	if img.Op() != first {
		t.Fatalf("unchanged image recomputed")
	}
	img.Cache(src, 0.5)
	if img.Op() == first {
		t.Fatalf("alpha change not recomputed")
	}
}

func TestBakeFades(t *testing.T) {
	src := image.NewNRGBA(image.Rect(3, 3, 5, 5))
	src.SetNRGBA(3, 3, color.NRGBA{R: 255, A: 255})
	got := bake(src, 0.5).(*image.NRGBA)
	if got.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds: got %v", got.Bounds())
	}
	if a := got.NRGBAAt(0, 0).A; a < 120 || a > 135 {
		t.Fatalf("alpha: got %d, want about 128", a)
	}
	if bake(src, 1) != image.Image(src) {
		t.Fatalf("opaque bake should return the source")
	}
}
