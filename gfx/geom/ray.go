package geom

import "math"

// Ray is the line Origin + t*Direction.
type Ray struct {
	Direction Vector3
	Origin    Vector3
}

func NewRay(direction, origin Vector3) Ray { return Ray{Direction: direction, Origin: origin} }

// At returns the point at parameter t.
func (r Ray) At(t float64) Vector3 { return r.Origin.Add(r.Direction.Mult(t)) }

// IntersectPlane returns the point where r meets p.
//
// There is no intersection when the ray runs parallel to the plane (a zero
// direction counts as parallel) or when the plane lies behind the origin.
func (r Ray) IntersectPlane(p Plane) (Vector3, bool) {
	denom := r.Direction.ScalarPrdct(p.Normal)
	if math.Abs(denom) < Epsilon*math.Max(1, r.Direction.Norm()) {
		return Vector3{}, false
	}
	t := r.Origin.To(p.Origin).ScalarPrdct(p.Normal) / denom
	if t < 0 {
		return Vector3{}, false
	}
	return r.At(t), true
}
