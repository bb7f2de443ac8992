package compose

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"gioui.org/f32"
	"git.sr.ht/~gioverse/ninepatch"
	"git.sr.ht/~gioverse/ninepatch/atlas"
)

// palette assigns each role a distinct opaque color.
func palette(r ninepatch.Role) color.NRGBA {
	return color.NRGBA{R: uint8(r+1) * 25, G: 255 - uint8(r)*25, B: 100, A: 255}
}

// solidPatch builds a ready patch whose tiles are solid colored frames:
// 8x8 corners, 8px thick edges and a 2x2 center.
func solidPatch(w, h float32) *ninepatch.Patch {
	var a atlas.Atlas
	for _, r := range ninepatch.Roles {
		sz := image.Pt(2, 2)
		switch {
		case r.IsCorner():
			sz = image.Pt(8, 8)
		case r == ninepatch.Top || r == ninepatch.Bottom:
			sz = image.Pt(2, 8)
		case r == ninepatch.Left || r == ninepatch.Right:
			sz = image.Pt(8, 2)
		}
		img := image.NewNRGBA(image.Rectangle{Max: sz})
		for yy := 0; yy < sz.Y; yy++ {
			for xx := 0; xx < sz.X; xx++ {
				img.SetNRGBA(xx, yy, palette(r))
			}
		}
		a.Add(r.String(), img)
	}
	opts := ninepatch.Options{Width: w, Height: h, Frames: true}
	for _, r := range ninepatch.Roles {
		opts.Sources[r] = r.String()
	}
	return ninepatch.New(provider{&a}, opts)
}

type provider struct {
	*atlas.Atlas
}

func (provider) Image(string) ninepatch.Source {
	panic("unexpected image request")
}

func TestRender(t *testing.T) {
	np := solidPatch(40, 30)
	img := Render(np, nil)
	if got := img.Bounds(); got != image.Rect(0, 0, 40, 30) {
		t.Fatalf("bounds: got %v, want 40x30", got)
	}
	for _, tt := range []struct {
		Pt   image.Point
		Role ninepatch.Role
	}{
		{Pt: image.Pt(0, 0), Role: ninepatch.TopLeft},
		{Pt: image.Pt(7, 7), Role: ninepatch.TopLeft},
		{Pt: image.Pt(20, 3), Role: ninepatch.Top},
		{Pt: image.Pt(39, 0), Role: ninepatch.TopRight},
		{Pt: image.Pt(2, 15), Role: ninepatch.Left},
		{Pt: image.Pt(20, 15), Role: ninepatch.Center},
		{Pt: image.Pt(37, 15), Role: ninepatch.Right},
		{Pt: image.Pt(0, 29), Role: ninepatch.BottomLeft},
		{Pt: image.Pt(20, 26), Role: ninepatch.Bottom},
		{Pt: image.Pt(39, 29), Role: ninepatch.BottomRight},
		{Pt: image.Pt(32, 22), Role: ninepatch.BottomRight},
	} {
		t.Run(fmt.Sprintf("%s@%v", tt.Role, tt.Pt), func(t *testing.T) {
			if got, want := img.NRGBAAt(tt.Pt.X, tt.Pt.Y), palette(tt.Role); got != want {
				t.Fatalf("got %v, want %v", got, want)
			}
		})
	}
}

func TestRenderScaled(t *testing.T) {
	np := solidPatch(40, 30)
	np.Scale = f32.Pt(2, 1)
	img := Render(np, nil)
	if got := img.Bounds(); got != image.Rect(0, 0, 80, 30) {
		t.Fatalf("bounds: got %v, want 80x30", got)
	}
	if got, want := img.NRGBAAt(79, 29), palette(ninepatch.BottomRight); got != want {
		t.Fatalf("bottom-right: got %v, want %v", got, want)
	}
}

func TestDrawHiddenWhileLoading(t *testing.T) {
	np := ninepatch.New(provider{&atlas.Atlas{}}, ninepatch.Options{Template: "*", Frames: true})
	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	Draw(dst, image.Point{}, np, nil)
	for _, px := range dst.Pix {
		if px != 0 {
			t.Fatalf("drew a patch that is still loading")
		}
	}
}

func TestDrawAlpha(t *testing.T) {
	np := solidPatch(20, 20)
	np.Alpha = 0.5
	dst := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	Draw(dst, image.Point{}, np, nil)
	if a := dst.NRGBAAt(10, 10).A; a < 120 || a > 135 {
		t.Fatalf("center alpha: got %d, want about 128", a)
	}
}
