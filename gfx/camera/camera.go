// Package camera describes the viewing pose used by the scene projector.
package camera

import (
	"fmt"

	"wirecam/gfx/geom"
)

// Mode selects the camera projection.
type Mode uint8

const (
	Perspective Mode = iota
	Orthographic
)

func (m Mode) String() string {
	switch m {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode maps a config name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "perspective":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	default:
		return 0, fmt.Errorf("unknown camera mode %q", s)
	}
}

// Viewport is the plane the camera projects onto, together with its mapping
// into viewport-relative coordinates.
type Viewport struct {
	Plane geom.Plane
}

// Relative maps a point on the viewport plane into 2D viewport coordinates.
func (vp Viewport) Relative(p geom.Vector3) geom.Vector3 { return vp.Plane.Relative(p) }

// Camera is a position plus an orientation expressed as a direction vector.
//
// The length of RotDir is the distance between the camera and its viewport.
type Camera struct {
	Pos    geom.Vector3
	RotDir geom.Vector3
	Mode   Mode

	Viewport      Viewport
	ViewportPlane geom.Plane
}

// New returns a camera at pos looking along rotDir. The viewport plane is
// placed |rotDir| in front of the camera and faces it.
func New(pos, rotDir geom.Vector3, mode Mode) (*Camera, error) {
	c := &Camera{Pos: pos, RotDir: rotDir, Mode: mode}
	if err := c.updateViewport(); err != nil {
		return nil, err
	}
	return c, nil
}

// LookAt points the camera at target, keeping the current viewport distance.
func (c *Camera) LookAt(target geom.Vector3) error {
	dir, err := c.Pos.To(target).Normalize()
	if err != nil {
		return fmt.Errorf("camera look at: %w", err)
	}
	dist := c.RotDir.Norm()
	if dist == 0 {
		dist = 1
	}
	c.RotDir = dir.Mult(dist)
	return c.updateViewport()
}

// MoveTo repositions the camera and its viewport.
func (c *Camera) MoveTo(pos geom.Vector3) error {
	c.Pos = pos
	return c.updateViewport()
}

func (c *Camera) updateViewport() error {
	if c.RotDir.IsNull() {
		return fmt.Errorf("camera direction: %w", geom.ErrZeroVector)
	}
	plane, err := geom.NewPlane(c.Pos.Add(c.RotDir), c.RotDir.Reverse(), geom.Up)
	if err != nil {
		return fmt.Errorf("camera viewport: %w", err)
	}
	c.ViewportPlane = plane
	c.Viewport = Viewport{Plane: plane}
	return nil
}

// LineOfSight is the ray leaving the camera along its orientation.
func (c *Camera) LineOfSight() geom.Ray { return geom.NewRay(c.RotDir, c.Pos) }

// PointOnViewport maps the camera's point zero for vertex: the line of sight
// is intersected with the viewport plane and the hit is expressed in
// viewport-relative coordinates. The vertex itself does not move the point,
// so a camera built by New always lands on the viewport centre. It reports
// false when the line of sight misses the viewport plane.
func (c *Camera) PointOnViewport(_ geom.Vector3) (geom.Vector3, bool) {
	return c.mapRay(c.LineOfSight())
}

// CastThrough casts a ray from the camera through vertex and maps the hit into
// viewport-relative coordinates. It reports false when the ray misses the
// viewport plane: the vertex is level with the camera, behind it, or equal to
// its position.
func (c *Camera) CastThrough(vertex geom.Vector3) (geom.Vector3, bool) {
	return c.mapRay(geom.NewRay(c.Pos.To(vertex), c.Pos))
}

func (c *Camera) mapRay(r geom.Ray) (geom.Vector3, bool) {
	hit, ok := r.IntersectPlane(c.ViewportPlane)
	if !ok {
		return geom.Vector3{}, false
	}
	return c.Viewport.Relative(hit), true
}
