// Package atlas stores named image frames for nine-patch tiles, and slices
// Android-style 9-Patch sheets into the nine frames a patch needs.
// https://developer.android.com/guide/topics/graphics/drawables#nine-patch
package atlas

import (
	"image"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gioui.org/f32"
	"git.sr.ht/~gioverse/ninepatch"
)

// Frame is a named, always-loaded image.
type Frame struct {
	Name string
	img  image.Image
}

// Size reports the frame's pixel dimensions.
func (f *Frame) Size() f32.Point {
	sz := f.img.Bounds().Size()
	return f32.Pt(float32(sz.X), float32(sz.Y))
}

// Loaded is always true.
func (f *Frame) Loaded() bool { return true }

// OnLoad is a no-op: frames never transition.
func (f *Frame) OnLoad(func()) {}

// Image returns the frame's pixels.
func (f *Frame) Image() image.Image { return f.img }

// missing stands in for an unknown frame. It never loads.
type missing struct{}

func (missing) Size() f32.Point { return f32.Point{} }
func (missing) Loaded() bool    { return false }
func (missing) OnLoad(func())   {}

// Atlas is a set of named frames. The zero value is ready to use and safe for
// concurrent use.
type Atlas struct {
	mu     sync.RWMutex
	frames map[string]*Frame
}

// Add registers img under name, replacing any existing frame.
func (a *Atlas) Add(name string, img image.Image) *Frame {
	f := &Frame{Name: name, img: img}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frames == nil {
		a.frames = make(map[string]*Frame)
	}
	a.frames[name] = f
	return f
}

// subImager is implemented by the standard library image types.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// AddSheet slices the sheet into nine frames named by template, whose first
// ninepatch.Placeholder is replaced by 1 through 9 in role order.
func (a *Atlas) AddSheet(template string, s Sheet) [9]*Frame {
	var (
		out     [9]*Frame
		regions = s.Regions()
	)
	if st := s.Grid.Stretch(); st.X == 0 || st.Y == 0 {
		ninepatch.Logger().Warn("atlas: sheet has no stretchable area",
			"template", template, "stretch", st)
	}
	for ii, r := range regions {
		name := strings.Replace(template, ninepatch.Placeholder, strconv.Itoa(ii+1), 1)
		out[ii] = a.Add(name, subImage(s.Image, r))
	}
	return out
}

func subImage(img image.Image, r image.Rectangle) image.Image {
	if si, ok := img.(subImager); ok {
		return si.SubImage(r)
	}
	out := image.NewNRGBA(r)
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		for xx := r.Min.X; xx < r.Max.X; xx++ {
			out.Set(xx, yy, img.At(xx, yy))
		}
	}
	return out
}

// Lookup returns the frame registered under name.
func (a *Atlas) Lookup(name string) (*Frame, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	f, ok := a.frames[name]
	return f, ok
}

// Frame resolves name to a tile source. Unknown names yield a source that
// never loads, leaving any patch that uses it hidden.
func (a *Atlas) Frame(name string) ninepatch.Source {
	if f, ok := a.Lookup(name); ok {
		return f
	}
	ninepatch.Logger().Warn("atlas: unknown frame", "name", name)
	return missing{}
}

// Names returns the registered frame names in sorted order.
func (a *Atlas) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := make([]string, 0, len(a.frames))
	for name := range a.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
