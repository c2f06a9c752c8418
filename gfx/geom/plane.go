package geom

import "fmt"

// Plane is a point on a plane, its unit normal and an orthonormal in-plane
// basis. U is the local x axis (right), V the local y axis (up).
type Plane struct {
	Origin Vector3
	Normal Vector3
	U, V   Vector3
}

// NewPlane builds a plane through origin with the given normal. The in-plane
// basis is derived from up; when the normal is collinear with up, Right is
// used instead.
func NewPlane(origin, normal, up Vector3) (Plane, error) {
	n, err := normal.Normalize()
	if err != nil {
		return Plane{}, fmt.Errorf("plane normal: %w", err)
	}
	if up.IsCollinearWith(n) {
		up = Right
	}
	// Normal faces the viewer, so right = up x (-n).
	u, err := up.Cross(n.Reverse()).Normalize()
	if err != nil {
		return Plane{}, fmt.Errorf("plane basis: %w", err)
	}
	v := n.Reverse().Cross(u)
	return Plane{Origin: origin, Normal: n, U: u, V: v}, nil
}

// Relative maps a point on the plane to plane-local coordinates (x, y, 0).
func (p Plane) Relative(pt Vector3) Vector3 {
	d := p.Origin.To(pt)
	return Vector3{X: d.ScalarPrdct(p.U), Y: d.ScalarPrdct(p.V)}
}
