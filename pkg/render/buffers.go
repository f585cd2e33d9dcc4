// Package render prepares meshes for a drawing collaborator: flat float32
// vertex, normal, and index arrays with four entries per quad face. This is
// data preparation only; no drawing happens here.
package render

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/chazu/tenon/pkg/geom"
)

// MeshData is the draw-ready form of a mesh. All arrays are flat: vertices
// has 3 floats per corner (x,y,z), normals has 3 floats per corner, indices
// has 4 uint32s per quad.
type MeshData struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...] face normal repeated per corner
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2,i3, ...] quads
	Name     string    `json:"name"`
}

// Buffers unrolls a mesh into draw-ready arrays. Every quad contributes its
// four corner positions with the face normal repeated per corner, so shared
// vertices are duplicated and faces shade flat. Degenerate quads carry a
// zero normal.
func Buffers(m *geom.Mesh) (*MeshData, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	numCorners := len(m.Faces) * 4
	data := &MeshData{
		Vertices: make([]float32, 0, numCorners*3),
		Normals:  make([]float32, 0, numCorners*3),
		Indices:  make([]uint32, 0, numCorners),
		Name:     m.Name,
	}

	for i, f := range m.Faces {
		nx, ny, nz := faceNormal(m, f)
		for j := 0; j < 4; j++ {
			v := m.Vertices[f[j]]
			data.Vertices = append(data.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			data.Normals = append(data.Normals, nx, ny, nz)
			data.Indices = append(data.Indices, uint32(i*4+j))
		}
	}

	return data, nil
}

// faceNormal computes the unit normal of a quad from its first three
// corners, in float32 like the rest of the draw path.
func faceNormal(m *geom.Mesh, f geom.Quad) (nx, ny, nz float32) {
	a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]

	ux, uy, uz := float32(b.X-a.X), float32(b.Y-a.Y), float32(b.Z-a.Z)
	vx, vy, vz := float32(c.X-a.X), float32(c.Y-a.Y), float32(c.Z-a.Z)

	nx = uy*vz - uz*vy
	ny = uz*vx - ux*vz
	nz = ux*vy - uy*vx

	length := math32.Sqrt(nx*nx + ny*ny + nz*nz)
	if length == 0 {
		return 0, 0, 0
	}
	return nx / length, ny / length, nz / length
}
