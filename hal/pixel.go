package hal

import (
	"encoding/binary"
	"image"
)

// RGB565 packs an 8-bit RGB triple into the framebuffer pixel encoding.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

func fillRGB565(buf []byte, p uint16) {
	for i := 0; i+1 < len(buf); i += 2 {
		binary.LittleEndian.PutUint16(buf[i:], p)
	}
}

// expandRGB565 converts little-endian RGB565 rows into opaque RGBA pixels.
func expandRGB565(dst *image.RGBA, src []byte, width, height, stride int) {
	for y := 0; y < height; y++ {
		row := src[y*stride:]
		out := dst.Pix[y*dst.Stride:]
		for x := 0; x < width && x*2+1 < len(row); x++ {
			r, g, b := rgb888From565(binary.LittleEndian.Uint16(row[x*2:]))
			j := x * 4
			out[j+0] = r
			out[j+1] = g
			out[j+2] = b
			out[j+3] = 0xFF
		}
	}
}

// Image copies fb into a new RGBA image. Formats other than RGB565 yield an
// empty image of the right size.
func Image(fb Framebuffer) *image.RGBA {
	if hf, ok := fb.(*hostFramebuffer); ok {
		return hf.toRGBA(nil)
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if fb.Format() != PixelFormatRGB565 {
		return img
	}
	expandRGB565(img, fb.Buffer(), fb.Width(), fb.Height(), fb.StrideBytes())
	return img
}
