// Package geom defines the quad-mesh data model and the combine and weld
// operations used to build composite meshes out of primitive parts.
package geom

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Quad is a four-sided face, stored as vertex ids in winding order.
type Quad [4]int

// Mesh is an ordered collection of vertices and quad faces. A vertex id is
// its position in Vertices, so vertex order is significant. Faces reference
// vertices by id; every id must be in range after every operation.
type Mesh struct {
	Vertices []v3.Vec `json:"vertices"`
	Faces    []Quad   `json:"faces"`
	Name     string   `json:"name,omitempty"` // part label, set by callers, never by generators
}

// FaceIndexError reports a face that references a vertex id outside the mesh.
type FaceIndexError struct {
	Face        int // position of the face in Faces
	Corner      int // corner within the quad, 0-3
	ID          int // the offending vertex id
	VertexCount int
}

func (e *FaceIndexError) Error() string {
	return fmt.Sprintf("face %d corner %d references vertex %d, mesh has %d vertices",
		e.Face, e.Corner, e.ID, e.VertexCount)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of quad faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

func (m *Mesh) String() string {
	return fmt.Sprintf("mesh(%d vertices, %d faces)", len(m.Vertices), len(m.Faces))
}

// Validate checks that every face id is in range for the vertex list.
// It returns a *FaceIndexError for the first violation found.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for fi, f := range m.Faces {
		for c, id := range f {
			if id < 0 || id >= n {
				return &FaceIndexError{Face: fi, Corner: c, ID: id, VertexCount: n}
			}
		}
	}
	return nil
}

// Clone returns a deep copy. The copy shares no buffers with m.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices: make([]v3.Vec, len(m.Vertices)),
		Faces:    make([]Quad, len(m.Faces)),
		Name:     m.Name,
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Faces, m.Faces)
	return out
}

// Translate returns a copy of the mesh moved by offset.
func (m *Mesh) Translate(offset v3.Vec) *Mesh {
	out := m.Clone()
	for i := range out.Vertices {
		out.Vertices[i] = out.Vertices[i].Add(offset)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty mesh has a zero box.
func (m *Mesh) Bounds() (min, max v3.Vec) {
	if len(m.Vertices) == 0 {
		return v3.Vec{}, v3.Vec{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}
