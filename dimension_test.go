package ninepatch

import (
	"testing"

	"gioui.org/f32"
)

func TestDimensions(t *testing.T) {
	for _, tt := range []struct {
		Label string
		Mode  ScaleMode
		// Set is applied before reading back.
		Set        func(np *Patch)
		Scale      f32.Point
		Width      float32
		Height     float32
		Target     f32.Point
		TopWidth   float32
		LeftHeight float32
	}{
		{
			Label:      "ninepatch initial",
			Mode:       ModeNinePatch,
			Set:        func(np *Patch) {},
			Scale:      f32.Pt(1, 1),
			Width:      50,
			Height:     30,
			Target:     f32.Pt(50, 30),
			TopWidth:   30,
			LeftHeight: 10,
		},
		{
			Label:      "ninepatch set width",
			Mode:       ModeNinePatch,
			Set:        func(np *Patch) { np.SetWidth(150) },
			Scale:      f32.Pt(1, 1),
			Width:      150,
			Height:     30,
			Target:     f32.Pt(150, 30),
			TopWidth:   130,
			LeftHeight: 10,
		},
		{
			Label:      "ninepatch set height",
			Mode:       ModeNinePatch,
			Set:        func(np *Patch) { np.SetHeight(90) },
			Scale:      f32.Pt(1, 1),
			Width:      50,
			Height:     90,
			Target:     f32.Pt(50, 90),
			TopWidth:   30,
			LeftHeight: 70,
		},
		{
			Label:      "ninepatch reports host scale",
			Mode:       ModeNinePatch,
			Set:        func(np *Patch) { np.Scale = f32.Pt(2, 0.5) },
			Scale:      f32.Pt(2, 0.5),
			Width:      100,
			Height:     15,
			Target:     f32.Pt(50, 30),
			TopWidth:   30,
			LeftHeight: 10,
		},
		{
			// Bounding box is 50 wide, so 150 triples the scale.
			Label:      "default set width",
			Mode:       ModeDefault,
			Set:        func(np *Patch) { np.SetWidth(150) },
			Scale:      f32.Pt(3, 1),
			Width:      150,
			Height:     30,
			Target:     f32.Pt(50, 30),
			TopWidth:   30,
			LeftHeight: 10,
		},
		{
			Label:      "default set height",
			Mode:       ModeDefault,
			Set:        func(np *Patch) { np.SetHeight(15) },
			Scale:      f32.Pt(1, 0.5),
			Width:      50,
			Height:     15,
			Target:     f32.Pt(50, 30),
			TopWidth:   30,
			LeftHeight: 10,
		},
	} {
		t.Run(tt.Label, func(t *testing.T) {
			np := New(&fakeProvider{preload: true}, Options{
				Width:    50,
				Height:   30,
				Template: "*",
				Mode:     tt.Mode,
			})
			tt.Set(np)
			if np.Scale != tt.Scale {
				t.Errorf("scale: got %v, want %v", np.Scale, tt.Scale)
			}
			if got := np.Width(); got != tt.Width {
				t.Errorf("width: got %v, want %v", got, tt.Width)
			}
			if got := np.Height(); got != tt.Height {
				t.Errorf("height: got %v, want %v", got, tt.Height)
			}
			if got := np.Target(); got != tt.Target {
				t.Errorf("target: got %v, want %v", got, tt.Target)
			}
			if got := np.Head().Width(); got != tt.TopWidth {
				t.Errorf("top width: got %v, want %v", got, tt.TopWidth)
			}
			if got := np.At(Left).Height(); got != tt.LeftHeight {
				t.Errorf("left height: got %v, want %v", got, tt.LeftHeight)
			}
		})
	}
}

func TestScaledWidthEmptyBounds(t *testing.T) {
	// Unloaded tiles have no size, so the bounds are empty.
	np := New(&fakeProvider{}, Options{Width: 50, Height: 30, Template: "*", Mode: ModeDefault})
	np.Scale = f32.Pt(4, 4)
	np.SetScaledWidth(150)
	np.SetScaledHeight(90)
	if np.Scale != f32.Pt(1, 1) {
		t.Errorf("scale: got %v, want (1,1)", np.Scale)
	}
	if got := np.Requested(); got != f32.Pt(150, 90) {
		t.Errorf("requested: got %v, want (150,90)", got)
	}
	if np.Width() != 0 {
		t.Errorf("width: got %v, want 0", np.Width())
	}
}

func TestRectCanon(t *testing.T) {
	for _, tt := range []struct {
		Label string
		In    Rect
		Want  Rect
	}{
		{
			Label: "already canonical",
			In:    Rect{Min: f32.Pt(1, 2), Max: f32.Pt(3, 4)},
			Want:  Rect{Min: f32.Pt(1, 2), Max: f32.Pt(3, 4)},
		},
		{
			Label: "negative width",
			In:    Rect{Min: f32.Pt(10, 0), Max: f32.Pt(5, 4)},
			Want:  Rect{Min: f32.Pt(5, 0), Max: f32.Pt(10, 4)},
		},
		{
			Label: "negative both",
			In:    Rect{Min: f32.Pt(10, 8), Max: f32.Pt(5, 4)},
			Want:  Rect{Min: f32.Pt(5, 4), Max: f32.Pt(10, 8)},
		},
	} {
		t.Run(tt.Label, func(t *testing.T) {
			if got := tt.In.Canon(); got != tt.Want {
				t.Fatalf("\n got:{%v} \nwant:{%v}\n", got, tt.Want)
			}
		})
	}
}
