// Package primitive generates parametric quad meshes: box, sphere, cylinder
// and torus. Every generator is a pure function of its numeric parameters,
// deterministic, and emits only valid face ids. Degenerate parameters (zero
// sizes, tiny segment counts) produce degenerate or empty geometry rather
// than errors.
//
// Winding is consistent within each shape but not guaranteed outward-facing.
package primitive

import (
	"github.com/chazu/tenon/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Box returns a cube centered at the origin with half-extent size:
// 8 corner vertices and 6 quad faces in the canonical corner enumeration
// (bottom ring first, then the top ring directly above it).
func Box(size float64) *geom.Mesh {
	s := size
	return &geom.Mesh{
		Vertices: []v3.Vec{
			{X: -s, Y: -s, Z: -s},
			{X: s, Y: -s, Z: -s},
			{X: s, Y: s, Z: -s},
			{X: -s, Y: s, Z: -s},
			{X: -s, Y: -s, Z: s},
			{X: s, Y: -s, Z: s},
			{X: s, Y: s, Z: s},
			{X: -s, Y: s, Z: s},
		},
		Faces: []geom.Quad{
			{0, 1, 2, 3}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4},
			{2, 3, 7, 6},
			{0, 3, 7, 4},
			{1, 2, 6, 5},
		},
	}
}
