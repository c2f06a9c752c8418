// Package mesh provides sample wireframe objects for a scene.
package mesh

import (
	"math"

	"wirecam/gfx/geom"
)

// Mesh is a vertex list plus flat triangle and quad index lists.
// It satisfies scene.Object.
type Mesh struct {
	Name  string
	Verts []geom.Vector3
	Tris  []int
	Quads []int
}

func (m *Mesh) Vertexes() []geom.Vector3 { return m.Verts }
func (m *Mesh) Triangles() []int         { return m.Tris }
func (m *Mesh) Rectangles() []int        { return m.Quads }

// Translate moves every vertex by d.
func (m *Mesh) Translate(d geom.Vector3) *Mesh {
	for i := range m.Verts {
		m.Verts[i] = m.Verts[i].Add(d)
	}
	return m
}

// Cube returns an axis-aligned cube of edge size centred on center, made of
// six quads.
func Cube(center geom.Vector3, size float64) *Mesh {
	h := size / 2
	verts := make([]geom.Vector3, 0, 8)
	for i := 0; i < 8; i++ {
		x, y, z := -h, -h, -h
		if i&1 != 0 {
			x = h
		}
		if i&2 != 0 {
			y = h
		}
		if i&4 != 0 {
			z = h
		}
		verts = append(verts, geom.V3(x, y, z).Add(center))
	}
	return &Mesh{
		Name:  "cube",
		Verts: verts,
		Quads: []int{
			0, 1, 3, 2, // z-
			4, 5, 7, 6, // z+
			0, 1, 5, 4, // y-
			2, 3, 7, 6, // y+
			0, 2, 6, 4, // x-
			1, 3, 7, 5, // x+
		},
	}
}

// Pyramid returns a square pyramid: a quad base of edge size at center.Y and
// four triangles meeting at the apex one size above it.
func Pyramid(center geom.Vector3, size float64) *Mesh {
	h := size / 2
	verts := []geom.Vector3{
		geom.V3(-h, 0, -h).Add(center),
		geom.V3(h, 0, -h).Add(center),
		geom.V3(h, 0, h).Add(center),
		geom.V3(-h, 0, h).Add(center),
		geom.V3(0, size, 0).Add(center),
	}
	return &Mesh{
		Name:  "pyramid",
		Verts: verts,
		Tris: []int{
			0, 1, 4,
			1, 2, 4,
			2, 3, 4,
			3, 0, 4,
		},
		Quads: []int{0, 1, 2, 3},
	}
}

// Torus returns a torus around the Y axis built from segU×segV quads.
// Segment counts below 3 are raised to 3.
func Torus(center geom.Vector3, major, minor float64, segU, segV int) *Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	verts := make([]geom.Vector3, 0, segU*segV)
	quads := make([]int, 0, segU*segV*4)

	for u := 0; u < segU; u++ {
		theta := 2 * math.Pi * float64(u) / float64(segU)
		ct, st := math.Cos(theta), math.Sin(theta)
		for v := 0; v < segV; v++ {
			phi := 2 * math.Pi * float64(v) / float64(segV)
			cp, sp := math.Cos(phi), math.Sin(phi)

			r := major + minor*cp
			verts = append(verts, geom.V3(r*ct, minor*sp, r*st).Add(center))
		}
	}

	idx := func(u, v int) int {
		return (u%segU)*segV + v%segV
	}
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			quads = append(quads, idx(u, v), idx(u+1, v), idx(u+1, v+1), idx(u, v+1))
		}
	}

	return &Mesh{Name: "torus", Verts: verts, Quads: quads}
}
