package primitive

import (
	"math"

	"github.com/chazu/tenon/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Cylinder returns an open tube: two rings of segments vertices at z=0 and
// z=height, interleaved bottom/top per angle step, with one side quad per
// segment wrapping around at the seam. No cap faces. A segment count below
// one yields an empty mesh.
func Cylinder(radius, height float64, segments int) *geom.Mesh {
	if segments < 1 {
		return &geom.Mesh{}
	}

	vertices := make([]v3.Vec, 0, 2*segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		x, y := math.Cos(angle)*radius, math.Sin(angle)*radius
		vertices = append(vertices,
			v3.Vec{X: x, Y: y, Z: 0},
			v3.Vec{X: x, Y: y, Z: height})
	}

	n := 2 * segments
	faces := make([]geom.Quad, 0, segments)
	for i := 0; i < n; i += 2 {
		faces = append(faces, geom.Quad{i, (i + 2) % n, (i + 3) % n, i + 1})
	}

	return &geom.Mesh{Vertices: vertices, Faces: faces}
}
