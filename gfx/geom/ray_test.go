package geom

import "testing"

func facingPlane(t *testing.T) Plane {
	t.Helper()
	p, err := NewPlane(V3(0, 0, 5), V3(0, 0, -1), Up)
	if err != nil {
		t.Fatalf("plane: %v", err)
	}
	return p
}

func TestIntersectPlaneHit(t *testing.T) {
	p := facingPlane(t)
	got, ok := NewRay(V3(1, 0, 1), Zero).IntersectPlane(p)
	if !ok {
		t.Fatalf("no hit")
	}
	if !got.ApproxEqual(V3(5, 0, 5), 1e-12) {
		t.Fatalf("hit = %v", got)
	}
}

func TestIntersectPlaneAbsent(t *testing.T) {
	p := facingPlane(t)
	for _, tc := range []struct {
		name string
		ray  Ray
	}{
		{"parallel", NewRay(Right, Zero)},
		{"zero direction", NewRay(Zero, Zero)},
		{"behind", NewRay(Forward.Reverse(), Zero)},
	} {
		if got, ok := tc.ray.IntersectPlane(p); ok {
			t.Fatalf("%s: unexpected hit %v", tc.name, got)
		}
	}
}

func TestPlaneRelative(t *testing.T) {
	p := facingPlane(t)
	if !p.U.EqualsTo(Right) || !p.V.EqualsTo(Up) {
		t.Fatalf("basis u=%v v=%v", p.U, p.V)
	}
	if got := p.Relative(V3(2, 3, 5)); !got.EqualsTo(V3(2, 3, 0)) {
		t.Fatalf("relative = %v", got)
	}
}

func TestPlaneFallsBackToRight(t *testing.T) {
	p, err := NewPlane(Zero, Up, Up)
	if err != nil {
		t.Fatalf("plane: %v", err)
	}
	if p.U.ScalarPrdct(p.Normal) != 0 || p.V.ScalarPrdct(p.Normal) != 0 {
		t.Fatalf("basis not in plane: u=%v v=%v", p.U, p.V)
	}
	if _, err := NewPlane(Zero, Zero, Up); err == nil {
		t.Fatalf("zero normal accepted")
	}
}

func TestPlaneRelativeMatchesBasisProduct(t *testing.T) {
	p, err := NewPlane(V3(1, -2, 3), V3(1, 2, -2), Up)
	if err != nil {
		t.Fatalf("plane: %v", err)
	}
	basis := NewMatrix(2, 3)
	if err := basis.SetAll(p.U.X, p.U.Y, p.U.Z, p.V.X, p.V.Y, p.V.Z); err != nil {
		t.Fatalf("setAll: %v", err)
	}
	for _, pt := range []Vector3{V3(4, 0, -1), V3(1, -2, 3), V3(-7, 5, 2)} {
		prod, err := basis.Mul(p.Origin.To(pt).ToMatrix())
		if err != nil {
			t.Fatalf("mul: %v", err)
		}
		x, _ := prod.Get(0, 0)
		y, _ := prod.Get(1, 0)
		if got := p.Relative(pt); !got.ApproxEqual(V3(x, y, 0), 1e-12) {
			t.Fatalf("relative(%v) = %v, basis product (%v, %v)", pt, got, x, y)
		}
	}
	if got := p.Relative(p.Origin); !got.EqualsTo(Zero) {
		t.Fatalf("relative(origin) = %v", got)
	}
}
