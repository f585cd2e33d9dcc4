package primitive

import (
	"math"

	"github.com/chazu/tenon/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Torus returns a ring of tube radius innerRadius around a circle of radius
// outerRadius in the xy plane: a segments x sides vertex grid with quads
// wrapping around in both directions (full 2-torus topology). Either count
// below one yields an empty mesh.
func Torus(innerRadius, outerRadius float64, segments, sides int) *geom.Mesh {
	if segments < 1 || sides < 1 {
		return &geom.Mesh{}
	}

	vertices := make([]v3.Vec, 0, segments*sides)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		for j := 0; j < sides; j++ {
			theta := 2 * math.Pi * float64(j) / float64(sides)
			vertices = append(vertices, v3.Vec{
				X: (outerRadius + innerRadius*math.Cos(theta)) * math.Cos(angle),
				Y: (outerRadius + innerRadius*math.Cos(theta)) * math.Sin(angle),
				Z: innerRadius * math.Sin(theta),
			})
		}
	}

	faces := make([]geom.Quad, 0, segments*sides)
	for i := 0; i < segments; i++ {
		for j := 0; j < sides; j++ {
			faces = append(faces, geom.Quad{
				i*sides + j,
				i*sides + (j+1)%sides,
				((i+1)%segments)*sides + (j+1)%sides,
				((i+1)%segments)*sides + j,
			})
		}
	}

	return &geom.Mesh{Vertices: vertices, Faces: faces}
}
