package geom

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Combine concatenates two meshes into a new one. The vertices of b follow
// the vertices of a, and every face id from b is shifted by a's vertex count
// so it keeps pointing at the same point. Both inputs are validated first: a
// malformed mesh is a caller bug and fails here rather than producing a mesh
// with dangling face ids. Neither input is modified.
func Combine(a, b *Mesh) (*Mesh, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("combine: first mesh: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("combine: second mesh: %w", err)
	}

	offset := len(a.Vertices)

	vertices := make([]v3.Vec, 0, len(a.Vertices)+len(b.Vertices))
	vertices = append(vertices, a.Vertices...)
	vertices = append(vertices, b.Vertices...)

	faces := make([]Quad, 0, len(a.Faces)+len(b.Faces))
	faces = append(faces, a.Faces...)
	for _, f := range b.Faces {
		faces = append(faces, Quad{f[0] + offset, f[1] + offset, f[2] + offset, f[3] + offset})
	}

	return &Mesh{Vertices: vertices, Faces: faces}, nil
}

// Concat folds Combine over the meshes left to right. An empty list yields
// an empty mesh and a single mesh comes back as a clone, in both cases
// without invoking Combine.
func Concat(meshes []*Mesh) (*Mesh, error) {
	switch len(meshes) {
	case 0:
		return &Mesh{}, nil
	case 1:
		if err := meshes[0].Validate(); err != nil {
			return nil, fmt.Errorf("concat: %w", err)
		}
		return meshes[0].Clone(), nil
	}

	out := meshes[0]
	for i, m := range meshes[1:] {
		var err error
		out, err = Combine(out, m)
		if err != nil {
			return nil, fmt.Errorf("concat: mesh %d: %w", i+1, err)
		}
	}
	return out, nil
}
