//go:build !tinygo

package hal

import (
	"image"
	"sync"
)

// hostFramebuffer keeps little-endian RGB565 rows with no padding. The mutex
// covers the copy the window and snapshots take while the app draws.
type hostFramebuffer struct {
	mu   sync.Mutex
	w, h int
	pix  []byte
}

func newHostFramebuffer(w, h int) *hostFramebuffer {
	return &hostFramebuffer{w: w, h: h, pix: make([]byte, w*h*2)}
}

func (f *hostFramebuffer) Width() int          { return f.w }
func (f *hostFramebuffer) Height() int         { return f.h }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.w * 2 }
func (f *hostFramebuffer) Buffer() []byte      { return f.pix }
func (f *hostFramebuffer) Present() error      { return nil }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fillRGB565(f.pix, RGB565(r, g, b))
}

// toRGBA expands the frame into dst, reallocating it when its size differs.
func (f *hostFramebuffer) toRGBA(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != f.w || dst.Bounds().Dy() != f.h {
		dst = image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	expandRGB565(dst, f.pix, f.w, f.h, f.w*2)
	return dst
}
