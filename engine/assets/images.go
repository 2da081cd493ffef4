package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	// Decoders for the formats sketches commonly ship.
	_ "image/jpeg"
	_ "image/png"
)

// ErrNotFound reports an image resource that could not be resolved
// against the filesystem or the bundled assets, or whose bytes did not
// decode as an image.
var ErrNotFound = errors.New("image resource not found")

// Image is a decoded raster image. Immutable after construction; the
// cache is the sole owner, callers hold the shared handle.
type Image struct {
	src  image.Image
	w, h int
}

func (i *Image) Width() int          { return i.w }
func (i *Image) Height() int         { return i.h }
func (i *Image) Source() image.Image { return i.src }

// ImageCache loads images on first use and returns the same handle for
// every later request of the same name. Not safe for concurrent use;
// the engine drives it from a single thread.
type ImageCache struct {
	bundled fs.FS
	images  map[string]*Image
}

// NewImageCache creates a cache. bundled may be nil; it is the fallback
// source (typically an embed.FS) consulted when no file exists at the
// resource name's path.
func NewImageCache(bundled fs.FS) *ImageCache {
	return &ImageCache{bundled: bundled, images: map[string]*Image{}}
}

// Load resolves name to a decoded image, decoding at most once per
// distinct name for the lifetime of the cache. Resolution order: a
// filesystem path, then the bundled assets by relative name.
func (c *ImageCache) Load(name string) (*Image, error) {
	if img, ok := c.images[name]; ok {
		return img, nil
	}

	data, err := c.read(name)
	if err != nil {
		return nil, err
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, ErrNotFound)
	}

	b := src.Bounds()
	img := &Image{src: src, w: b.Dx(), h: b.Dy()}
	c.images[name] = img
	return img, nil
}

func (c *ImageCache) read(name string) ([]byte, error) {
	if _, err := os.Stat(name); err == nil {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", name, ErrNotFound)
		}
		return data, nil
	}
	if c.bundled != nil {
		if data, err := fs.ReadFile(c.bundled, name); err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("resolve %q: %w", name, ErrNotFound)
}
