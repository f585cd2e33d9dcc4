package primitive

import (
	"math"

	"github.com/chazu/tenon/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Sphere returns a UV sphere with segments latitude bands and segments
// longitude steps. Two vertices are emitted per (band, step) pair, one on
// each of the band's bounding latitudes, giving 2*segments^2 vertices and
// segments*(segments-1) quads. Neighboring bands re-emit the shared
// latitude ring, so each quad carries a pair of coincident corners until
// the welder fuses the duplicates. A segment count below one yields an
// empty mesh.
func Sphere(radius float64, segments int) *geom.Mesh {
	if segments < 1 {
		return &geom.Mesh{}
	}

	vertices := make([]v3.Vec, 0, 2*segments*segments)
	for i := 0; i < segments; i++ {
		lat0 := math.Pi * (-0.5 + float64(i)/float64(segments))
		z0, zr0 := math.Sin(lat0), math.Cos(lat0)
		lat1 := math.Pi * (-0.5 + float64(i+1)/float64(segments))
		z1, zr1 := math.Sin(lat1), math.Cos(lat1)

		for j := 0; j < segments; j++ {
			lng := 2 * math.Pi * float64(j) / float64(segments)
			x, y := math.Cos(lng), math.Sin(lng)
			vertices = append(vertices,
				v3.Vec{X: x * zr0 * radius, Y: y * zr0 * radius, Z: z0 * radius},
				v3.Vec{X: x * zr1 * radius, Y: y * zr1 * radius, Z: z1 * radius})
		}
	}

	// Each quad joins a band pair to the pair one band up; the last band
	// has no band above it, so the loop stops a full band early.
	band := 2 * segments
	faces := make([]geom.Quad, 0, segments*(segments-1))
	for i := 0; i+band < len(vertices); i += 2 {
		faces = append(faces, geom.Quad{i, i + 1, i + band + 1, i + band})
	}

	return &geom.Mesh{Vertices: vertices, Faces: faces}
}
