// Package tiles provides tile sources for nine-patch layouts: images decoded
// asynchronously from a file system, and frames from an atlas.
package tiles

import (
	"context"
	"fmt"
	"image"
	"io/fs"

	"gioui.org/f32"
	"git.sr.ht/~gioverse/ninepatch"
	"git.sr.ht/~gioverse/ninepatch/async"
	"git.sr.ht/~gioverse/ninepatch/atlas"

	// Decoders for tile images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Provider implements ninepatch.Provider.
type Provider struct {
	// Loader decodes images off the UI goroutine. Its Dispatch must be called
	// from the goroutine that owns the patches.
	Loader *async.Loader
	// FS holds the images addressed by path.
	FS fs.FS
	// Atlas holds the frames addressed by name.
	Atlas *atlas.Atlas
}

// imageTag keys loads per provider, since different file systems may share
// paths.
type imageTag struct {
	p    *Provider
	path string
}

// Image schedules path to be decoded from the provider's FS. Without a
// Loader or an FS nothing can be decoded, and every image stays pending.
func (p *Provider) Image(path string) ninepatch.Source {
	if p.Loader == nil || p.FS == nil {
		ninepatch.Logger().Warn("tiles: provider cannot load images",
			"path", path, "loader", p.Loader != nil, "fs", p.FS != nil)
		return pending{}
	}
	r := p.Loader.Schedule(imageTag{p: p, path: path}, func(ctx context.Context) (interface{}, error) {
		return Decode(p.FS, path)
	})
	return Image{r}
}

// Frame resolves name from the provider's atlas. Without an atlas, every
// frame is missing.
func (p *Provider) Frame(name string) ninepatch.Source {
	if p.Atlas == nil {
		var empty atlas.Atlas
		return empty.Frame(name)
	}
	return p.Atlas.Frame(name)
}

// Decode an image from fsys in any registered format.
func Decode(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tile: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding tile %q: %w", path, err)
	}
	return img, nil
}

// Image is a tile source backed by an async resource.
type Image struct {
	*async.Resource
}

// Loaded reports whether the image has been decoded and dispatched.
func (img Image) Loaded() bool {
	return img.State() == async.Loaded
}

// Size reports the image dimensions, zero until loaded.
func (img Image) Size() f32.Point {
	src := img.Image()
	if src == nil {
		return f32.Point{}
	}
	sz := src.Bounds().Size()
	return f32.Pt(float32(sz.X), float32(sz.Y))
}

// Image returns the decoded image, nil until loaded.
func (img Image) Image() image.Image {
	src, _ := img.Value().(image.Image)
	return src
}

// pending is a source that never loads.
type pending struct{}

func (pending) Size() f32.Point  { return f32.Point{} }
func (pending) Loaded() bool     { return false }
func (pending) OnLoad(fn func()) {}
