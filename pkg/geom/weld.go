package geom

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DefaultWeldThreshold is the merge distance used when composing parts.
// Generators place seam vertices well inside it, so part boundaries fuse
// while distinct detail survives.
const DefaultWeldThreshold = 0.01

// Weld merges vertices that lie within threshold of an earlier vertex and
// returns the deduplicated mesh. The scan is ordered: each vertex is compared
// against the kept vertices in insertion order and snaps to the FIRST one
// strictly closer than threshold, not the nearest one. Keeping that rule
// makes welding deterministic and idempotent for a given vertex order, so
// don't replace the linear scan with a spatial index that answers
// nearest-neighbor queries.
//
// Exactly-coincident vertices merge at any threshold, so a threshold of 0
// degenerates to exact deduplication. Face ids are remapped to the kept
// vertices; the input is validated first and never modified.
func Weld(m *Mesh, threshold float64) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("weld: %w", err)
	}

	kept := make([]v3.Vec, 0, len(m.Vertices))
	remap := make([]int, len(m.Vertices))

	for vi, v := range m.Vertices {
		merged := false
		for ki, k := range kept {
			if d := v.Sub(k).Length(); d == 0 || d < threshold {
				remap[vi] = ki
				merged = true
				break
			}
		}
		if !merged {
			kept = append(kept, v)
			remap[vi] = len(kept) - 1
		}
	}

	faces := make([]Quad, len(m.Faces))
	for fi, f := range m.Faces {
		faces[fi] = Quad{remap[f[0]], remap[f[1]], remap[f[2]], remap[f[3]]}
	}

	return &Mesh{Vertices: kept, Faces: faces, Name: m.Name}, nil
}
