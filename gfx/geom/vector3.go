package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

var ErrZeroVector = errors.New("zero vector")

// Epsilon is the tolerance used by the collinearity and parallelism tests.
const Epsilon = 1e-9

// Vector3 is a 3D vector.
type Vector3 struct {
	X, Y, Z float64
}

var (
	Zero    = Vector3{0, 0, 0}
	Up      = Vector3{0, 1, 0}
	Right   = Vector3{1, 0, 0}
	Forward = Vector3{0, 0, 1}
)

func V3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// FromVec converts a mathgl vector.
func FromVec(v mgl64.Vec3) Vector3 { return Vector3{X: v[0], Y: v[1], Z: v[2]} }

func (v Vector3) Vec() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func (v Vector3) Add(o Vector3) Vector3  { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3  { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mult(k float64) Vector3 { return Vector3{v.X * k, v.Y * k, v.Z * k} }
func (v Vector3) Reverse() Vector3       { return Vector3{-v.X, -v.Y, -v.Z} }

// ScalarPrdct is the dot product.
func (v Vector3) ScalarPrdct(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// To returns the vector going from v to o.
func (v Vector3) To(o Vector3) Vector3 { return o.Sub(v) }

func (v Vector3) Cross(o Vector3) Vector3 { return FromVec(v.Vec().Cross(o.Vec())) }

func (v Vector3) NormSquare() float64 { return v.ScalarPrdct(v) }
func (v Vector3) Norm() float64       { return math.Sqrt(v.NormSquare()) }

// Normalize returns the unit vector with the direction of v.
// The zero vector has no direction and yields ErrZeroVector.
func (v Vector3) Normalize() (Vector3, error) {
	n := v.Norm()
	if n == 0 {
		return Vector3{}, ErrZeroVector
	}
	return v.Mult(1 / n), nil
}

// IsNull reports whether every component is exactly zero.
func (v Vector3) IsNull() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// EqualsTo is exact component-wise equality.
func (v Vector3) EqualsTo(o Vector3) bool { return v.X == o.X && v.Y == o.Y && v.Z == o.Z }

// ApproxEqual compares components with an absolute tolerance.
func (v Vector3) ApproxEqual(o Vector3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}

// Cp returns an independent copy of v.
func (v Vector3) Cp() Vector3 { return Vector3{X: v.X, Y: v.Y, Z: v.Z} }

// IsCollinearWith reports whether v and o share a line through the origin.
// The zero vector is collinear with everything.
func (v Vector3) IsCollinearWith(o Vector3) bool {
	scale := v.NormSquare() * o.NormSquare()
	if scale == 0 {
		return true
	}
	return v.Cross(o).NormSquare() <= Epsilon*Epsilon*scale
}

// AlignWith reports whether v, p and q lie on one line.
func (v Vector3) AlignWith(p, q Vector3) bool {
	return v.To(p).IsCollinearWith(v.To(q))
}

// ToEulerAngle converts a direction into rotation angles (pitch, yaw, roll).
//
// Rotating Forward about X by pitch, then about Y by yaw, gives the
// normalized direction. Roll is always zero. The zero vector maps to zero angles.
func (v Vector3) ToEulerAngle() Vector3 {
	yaw := math.Atan2(v.X, v.Z)
	pitch := math.Atan2(-v.Y, math.Hypot(v.X, v.Z))
	return Vector3{X: pitch, Y: yaw, Z: 0}
}

// ToMatrix returns v as a 3x1 column matrix.
func (v Vector3) ToMatrix() *Matrix {
	return &Matrix{rows: 3, cols: 1, d: mat.NewDense(3, 1, []float64{v.X, v.Y, v.Z})}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
