package scene

import (
	"image/color"

	"wirecam/gfx/geom"
)

// Surface is the 2D drawing target.
//
// Coordinates are already projected and transposed. One path is opened per
// shape and stroked before the next one begins.
type Surface interface {
	Dimensions() (w, h int)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	DrawPoint(x, y float64, c color.RGBA, size float64)
}

// Object is a renderable polygon set.
//
// Triangles and Rectangles are flat index lists into Vertexes with strides 3
// and 4. They are consumed back to front.
type Object interface {
	Vertexes() []geom.Vector3
	Triangles() []int
	Rectangles() []int
}

// AxisColor is the default color of the axis overlay points.
var AxisColor = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
