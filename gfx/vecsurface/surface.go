//go:build !tinygo && cgo

// Package vecsurface draws scene paths onto an ebiten image with the vector
// package, optionally anti-aliased.
package vecsurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is a scene.Surface over an *ebiten.Image.
type Surface struct {
	dst       *ebiten.Image
	antialias bool

	StrokeColor color.RGBA
	StrokeWidth float32

	path []float32
}

// New wraps dst. The surface is only valid for the frame dst belongs to.
func New(dst *ebiten.Image, antialias bool) *Surface {
	return &Surface{
		dst:         dst,
		antialias:   antialias,
		StrokeColor: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		StrokeWidth: 1,
	}
}

func (s *Surface) Dimensions() (w, h int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) BeginPath()          { s.path = s.path[:0] }
func (s *Surface) MoveTo(x, y float64) { s.path = append(s.path, float32(x), float32(y)) }
func (s *Surface) LineTo(x, y float64) { s.path = append(s.path, float32(x), float32(y)) }

// Stroke draws one segment per consecutive pair of path points.
func (s *Surface) Stroke() {
	for i := 2; i+1 < len(s.path); i += 2 {
		vector.StrokeLine(s.dst, s.path[i-2], s.path[i-1], s.path[i], s.path[i+1], s.StrokeWidth, s.StrokeColor, s.antialias)
	}
	s.path = s.path[:0]
}

func (s *Surface) DrawPoint(x, y float64, c color.RGBA, size float64) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(size/2), c, s.antialias)
}
