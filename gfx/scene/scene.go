// Package scene projects renderable objects through a camera and draws them
// as wireframes onto a Surface.
//
// Pipeline per frame:
//
//	objects → camera-relative vertex → rotation → perspective divide →
//	transpose (zoom, origin) → closed line paths per triangle/quad.
package scene

import (
	"errors"
	"fmt"
	"math"

	"wirecam/gfx/camera"
	"wirecam/gfx/diag"
	"wirecam/gfx/geom"
)

var (
	ErrUnsupportedProjectionMode = errors.New("unsupported projection mode")
	ErrIndexOutOfRange           = errors.New("index out of range")
)

// DefaultZoom is the scale applied by Transpose to a new scene.
const DefaultZoom = 10

// Scene owns a camera, a drawing surface and the objects to render.
type Scene struct {
	Camera *camera.Camera
	Origin geom.Vector3
	Zoom   float64

	surface Surface
	diag    *diag.Context
	objs    []Object

	// vpObj holds, per object, the projected point of each vertex.
	// It is rebuilt by every Render call.
	vpObj [][]geom.Vector3
}

// New returns a scene drawing to surface. The origin is the surface centre and
// the zoom is DefaultZoom. d may be nil.
func New(cam *camera.Camera, surface Surface, d *diag.Context) *Scene {
	d.Count("scene")
	w, h := surface.Dimensions()
	return &Scene{
		Camera:  cam,
		Origin:  geom.V3(math.Round(float64(w)/2), math.Round(float64(h)/2), 0),
		Zoom:    DefaultZoom,
		surface: surface,
		diag:    d,
	}
}

// Add appends obj to the render list.
func (s *Scene) Add(obj Object) { s.objs = append(s.objs, obj) }

// Objects returns the render list.
func (s *Scene) Objects() []Object { return s.objs }

// SetSurface retargets the scene, e.g. when the window hands a new frame image.
// The origin is left untouched.
func (s *Scene) SetSurface(surface Surface) { s.surface = surface }

// Transpose maps a viewport point to surface coordinates.
func (s *Scene) Transpose(v geom.Vector3) geom.Vector3 {
	return v.Mult(s.Zoom).Add(s.Origin)
}

// Projected returns the viewport points computed by the last Render.
func (s *Scene) Projected() [][]geom.Vector3 { return s.vpObj }

// Render projects every vertex of every object and draws the result.
//
// A camera mode other than Perspective fails with ErrUnsupportedProjectionMode
// and draws nothing; malformed index lists fail with ErrIndexOutOfRange before
// any drawing. In both cases the scene stays usable for the next call.
func (s *Scene) Render(showAxes bool) error {
	s.diag.Line(diag.ColorGreen, "Rendering ...")
	if s.Camera.Mode != camera.Perspective {
		err := fmt.Errorf("%w: %s", ErrUnsupportedProjectionMode, s.Camera.Mode)
		s.diag.Error("render aborted", "err", err)
		return err
	}
	if err := s.validate(); err != nil {
		s.diag.Error("render aborted", "err", err)
		return err
	}

	if showAxes {
		if err := s.RenderAxes(AxisColor); err != nil {
			return err
		}
	}

	s.project()
	s.draw()
	s.diag.Count("frame")
	return nil
}

func (s *Scene) project() {
	if cap(s.vpObj) < len(s.objs) {
		s.vpObj = make([][]geom.Vector3, len(s.objs))
	}
	s.vpObj = s.vpObj[:len(s.objs)]
	for i, o := range s.objs {
		verts := o.Vertexes()
		pts := s.vpObj[i][:0]
		for _, v := range verts {
			pts = append(pts, Project(s.Camera, v))
		}
		s.vpObj[i] = pts
	}
}

// Project maps a world vertex to a point on the view plane.
//
// See https://en.wikipedia.org/wiki/3D_projection#Perspective_projection.
// The terms are asymmetric: d.y uses Sy*x where d.z uses Sz*x, and d.x
// uses Sy*y.
// A zero depth collapses the point to (-r.x, -r.y, 0).
func Project(cam *camera.Camera, v geom.Vector3) geom.Vector3 {
	c := cam.Pos
	r := cam.RotDir
	o := r.ToEulerAngle()

	cx, cy, cz := math.Cos(o.X), math.Cos(o.Y), math.Cos(o.Z)
	sx, sy, sz := math.Sin(o.X), math.Sin(o.Y), math.Sin(o.Z)

	x := v.X - c.X
	y := v.Y - c.Y
	z := v.Z - c.Z

	szy := sy * y
	czx := cz * x
	czy := cz * y

	cyzSy := cy*z + sy*(sz*y+cz*x)

	d := geom.Vector3{
		// Cy(Sy*y + Cz*x) - Sy*z
		X: cy*(szy+czx) - sy*z,
		// Sx(Cy*z + Sy(Sz*y + Cz*x)) + Cx(Cz*y - Sy*x)
		Y: sx*cyzSy + cx*(czy-sy*x),
		// Cx(Cy*z + Sy(Sz*y + Cz*x)) - Sx(Cz*y - Sz*x)
		Z: cx*cyzSy - sx*(czy-sz*x),
	}

	ezdz := 0.0
	if d.Z != 0 {
		ezdz = r.Z / d.Z
	}
	return geom.Vector3{X: ezdz*d.X - r.X, Y: ezdz*d.Y - r.Y, Z: 0}
}

// validate checks every index group before anything is drawn.
func (s *Scene) validate() error {
	for idx, o := range s.objs {
		n := len(o.Vertexes())
		if err := checkGroups(o.Triangles(), 3, n); err != nil {
			return fmt.Errorf("object %d triangles: %w", idx, err)
		}
		if err := checkGroups(o.Rectangles(), 4, n); err != nil {
			return fmt.Errorf("object %d rectangles: %w", idx, err)
		}
	}
	return nil
}

func checkGroups(list []int, stride, nverts int) error {
	for i := len(list) - 1; i >= 0; i -= stride {
		if i-(stride-1) < 0 {
			return fmt.Errorf("%w: group ending at %d needs %d indices", ErrIndexOutOfRange, i, stride)
		}
		for k := 0; k < stride; k++ {
			if vi := list[i-k]; vi < 0 || vi >= nverts {
				return fmt.Errorf("%w: vertex %d of %d", ErrIndexOutOfRange, vi, nverts)
			}
		}
	}
	return nil
}

func (s *Scene) draw() {
	for idx, o := range s.objs {
		verts := s.vpObj[idx]
		s.diag.Dump("Vertexes", verts)

		tris := o.Triangles()
		for i := len(tris) - 1; i >= 0; i -= 3 {
			p0 := s.Transpose(verts[tris[i]])
			p1 := s.Transpose(verts[tris[i-1]])
			p2 := s.Transpose(verts[tris[i-2]])
			s.drawTriangle(p0, p1, p2)
		}

		rects := o.Rectangles()
		for i := len(rects) - 1; i >= 0; i -= 4 {
			p0 := s.Transpose(verts[rects[i]])
			p1 := s.Transpose(verts[rects[i-1]])
			p2 := s.Transpose(verts[rects[i-2]])
			p3 := s.Transpose(verts[rects[i-3]])
			s.drawRectangle(p0, p1, p2, p3)
		}
	}
}

func (s *Scene) drawTriangle(p0, p1, p2 geom.Vector3) {
	s.surface.BeginPath()
	s.surface.MoveTo(p2.X, p2.Y)
	s.surface.LineTo(p0.X, p0.Y)
	s.surface.LineTo(p1.X, p1.Y)
	s.surface.LineTo(p2.X, p2.Y)
	s.surface.Stroke()
}

func (s *Scene) drawRectangle(p0, p1, p2, p3 geom.Vector3) {
	s.surface.BeginPath()
	s.surface.MoveTo(p3.X, p3.Y)
	s.surface.LineTo(p0.X, p0.Y)
	s.surface.LineTo(p1.X, p1.Y)
	s.surface.LineTo(p2.X, p2.Y)
	s.surface.LineTo(p3.X, p3.Y)
	s.surface.Stroke()
}
