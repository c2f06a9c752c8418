package hal

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

var ErrNoFramebuffer = errors.New("no framebuffer")

// SaveSnapshot writes the current framebuffer contents to path, upscaled by
// scale with nearest-neighbour sampling. The encoder follows the file
// extension: .jpg/.jpeg, .bmp, anything else is PNG.
func SaveSnapshot(fb Framebuffer, path string, scale int) error {
	if fb == nil {
		return ErrNoFramebuffer
	}
	var img image.Image = Image(fb)
	if scale > 1 {
		img = transform.Resize(img, fb.Width()*scale, fb.Height()*scale, transform.NearestNeighbor)
	}
	if err := imgio.Save(path, img, encoderFor(path)); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}

func encoderFor(path string) imgio.Encoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(95)
	case ".bmp":
		return imgio.BMPEncoder()
	default:
		return imgio.PNGEncoder()
	}
}
