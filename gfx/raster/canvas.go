// Package raster draws scene paths into an RGB565 framebuffer.
package raster

import (
	"image/color"
	"math"

	"wirecam/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// maxCoord bounds segment endpoints; anything further out is dropped rather
// than walked pixel by pixel.
const maxCoord = 1 << 15

// Canvas is a scene.Surface over a hal.Framebuffer.
//
// Paths are collected between BeginPath and Stroke and drawn with Bresenham
// lines in the current Stroke color.
type Canvas struct {
	fb hal.Framebuffer

	StrokeColor color.RGBA
	Background  color.RGBA

	path    []point
	pending bool

	font tinyfont.Fonter
}

type point struct {
	x, y int
}

// New returns a canvas drawing white lines on black.
func New(fb hal.Framebuffer) *Canvas {
	return &Canvas{
		fb:          fb,
		StrokeColor: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Background:  color.RGBA{A: 0xFF},
		font:        &proggy.TinySZ8pt7b,
	}
}

func (c *Canvas) Dimensions() (w, h int) {
	if c.fb == nil {
		return 0, 0
	}
	return c.fb.Width(), c.fb.Height()
}

// Clear fills the framebuffer with the background color.
func (c *Canvas) Clear() {
	if c.fb == nil {
		return
	}
	c.fb.ClearRGB(c.Background.R, c.Background.G, c.Background.B)
}

func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
	c.pending = true
}

func (c *Canvas) MoveTo(x, y float64) {
	if !c.pending {
		c.BeginPath()
	}
	c.path = append(c.path, point{round(x), round(y)})
}

func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	c.path = append(c.path, point{round(x), round(y)})
}

// Stroke draws the collected path and resets it.
func (c *Canvas) Stroke() {
	for i := 1; i < len(c.path); i++ {
		a, b := c.path[i-1], c.path[i]
		c.line(a.x, a.y, b.x, b.y, c.StrokeColor)
	}
	c.path = c.path[:0]
	c.pending = false
}

// DrawPoint fills a disc of the given diameter centred on (x, y).
func (c *Canvas) DrawPoint(x, y float64, col color.RGBA, size float64) {
	r := size / 2
	if r < 0.5 {
		c.SetPixel(round(x), round(y), col)
		return
	}
	x0, x1 := int(math.Floor(x-r)), int(math.Ceil(x+r))
	y0, y1 := int(math.Floor(y-r)), int(math.Ceil(y+r))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := float64(px) - x
			dy := float64(py) - y
			if dx*dx+dy*dy <= r*r {
				c.SetPixel(px, py, col)
			}
		}
	}
}

// Label writes text with its baseline at (x, y).
func (c *Canvas) Label(x, y int, s string, col color.RGBA) {
	if c.fb == nil {
		return
	}
	tinyfont.WriteLine(&displayer{c: c}, c.font, int16(x), int16(y), s, col)
}

// SetPixel writes one pixel; out-of-bounds coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if c.fb == nil || c.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := c.fb.Buffer()
	if x < 0 || y < 0 || x >= c.fb.Width() || y >= c.fb.Height() {
		return
	}
	off := y*c.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	p := hal.RGB565(col.R, col.G, col.B)
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

func (c *Canvas) line(x0, y0, x1, y1 int, col color.RGBA) {
	if outOfReach(x0) || outOfReach(y0) || outOfReach(x1) || outOfReach(y1) {
		return
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// displayer adapts the canvas to drivers.Displayer for tinyfont.
type displayer struct {
	c *Canvas
}

var _ drivers.Displayer = (*displayer)(nil)

func (d *displayer) Size() (x, y int16) {
	w, h := d.c.Dimensions()
	return int16(w), int16(h)
}

func (d *displayer) SetPixel(x, y int16, col color.RGBA) { d.c.SetPixel(int(x), int(y), col) }
func (d *displayer) Display() error                      { return nil }

func round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.MinInt32
	}
	return int(math.Round(v))
}

func outOfReach(v int) bool { return v < -maxCoord || v > maxCoord }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
