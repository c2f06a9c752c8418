package scene

import (
	"fmt"
	"image/color"

	"wirecam/gfx/camera"
	"wirecam/gfx/diag"
	"wirecam/gfx/geom"
)

const axisPointSize = 10

// AxisPoints are the reference points drawn by RenderAxes.
var AxisPoints = []geom.Vector3{
	geom.Zero,
	geom.Up.Mult(5),
	geom.Right.Mult(15),
	geom.Forward,
}

// RenderAxes draws the reference points through the camera's line-of-sight
// viewport mapping. Points the camera cannot represent are skipped.
func (s *Scene) RenderAxes(c color.RGBA) error {
	if s.Camera.Mode != camera.Perspective {
		err := fmt.Errorf("%w: %s", ErrUnsupportedProjectionMode, s.Camera.Mode)
		s.diag.Error("axes not rendered", "err", err)
		return err
	}
	for _, p := range AxisPoints {
		s.drawPoint(p, c)
	}
	return nil
}

func (s *Scene) drawPoint(vertex geom.Vector3, c color.RGBA) bool {
	s.diag.Line(diag.ColorGreen, "DrawPoint "+vertex.String()+" ...")
	s.diag.Dump("vpPlane, vertex, camera ray", s.Camera.ViewportPlane, vertex, s.Camera.LineOfSight())

	pt, ok := s.Camera.PointOnViewport(vertex)
	if !ok {
		s.diag.Debug("point can't be represented on the surface", "vertex", vertex.String())
		return false
	}
	p := s.Transpose(pt)
	s.surface.DrawPoint(p.X, p.Y, c, axisPointSize)
	s.diag.Debug("point represented", "vertex", vertex.String(), "x", p.X, "y", p.Y)
	return true
}
