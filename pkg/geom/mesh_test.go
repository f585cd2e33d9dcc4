package geom

import (
	"errors"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// square returns a single-quad mesh offset by at.
func square(at v3.Vec) *Mesh {
	return &Mesh{
		Vertices: []v3.Vec{
			{X: at.X, Y: at.Y, Z: at.Z},
			{X: at.X + 1, Y: at.Y, Z: at.Z},
			{X: at.X + 1, Y: at.Y + 1, Z: at.Z},
			{X: at.X, Y: at.Y + 1, Z: at.Z},
		},
		Faces: []Quad{{0, 1, 2, 3}},
	}
}

func TestValidate(t *testing.T) {
	m := square(v3.Vec{})
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate failed on a well-formed mesh: %v", err)
	}

	m.Faces = append(m.Faces, Quad{0, 1, 2, 4})
	err := m.Validate()
	if err == nil {
		t.Fatal("expected error for out-of-range face id")
	}
	var fie *FaceIndexError
	if !errors.As(err, &fie) {
		t.Fatalf("expected *FaceIndexError, got %T", err)
	}
	if fie.Face != 1 || fie.Corner != 3 || fie.ID != 4 || fie.VertexCount != 4 {
		t.Errorf("FaceIndexError = %+v, expected face 1 corner 3 id 4 count 4", fie)
	}
}

func TestValidateNegativeID(t *testing.T) {
	m := square(v3.Vec{})
	m.Faces[0][2] = -1
	if m.Validate() == nil {
		t.Fatal("expected error for negative face id")
	}
}

func TestValidateEmpty(t *testing.T) {
	m := &Mesh{}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate failed on empty mesh: %v", err)
	}
	if !m.IsEmpty() {
		t.Error("empty mesh should report IsEmpty")
	}
}

func TestClone(t *testing.T) {
	m := square(v3.Vec{})
	m.Name = "panel"

	c := m.Clone()
	if c.VertexCount() != m.VertexCount() || c.FaceCount() != m.FaceCount() {
		t.Fatalf("clone counts = %d/%d, expected %d/%d",
			c.VertexCount(), c.FaceCount(), m.VertexCount(), m.FaceCount())
	}
	if c.Name != "panel" {
		t.Errorf("clone name = %q, expected %q", c.Name, "panel")
	}

	// Mutating the clone must not touch the original.
	c.Vertices[0].X = 99
	c.Faces[0][0] = 3
	if m.Vertices[0].X != 0 {
		t.Error("clone shares vertex buffer with original")
	}
	if m.Faces[0][0] != 0 {
		t.Error("clone shares face buffer with original")
	}
}

func TestTranslate(t *testing.T) {
	m := square(v3.Vec{})
	moved := m.Translate(v3.Vec{X: 2, Y: -1, Z: 0.5})

	if moved.Vertices[0] != (v3.Vec{X: 2, Y: -1, Z: 0.5}) {
		t.Errorf("moved vertex 0 = %v, expected (2,-1,0.5)", moved.Vertices[0])
	}
	if moved.Faces[0] != m.Faces[0] {
		t.Errorf("translate changed faces: %v vs %v", moved.Faces[0], m.Faces[0])
	}
	if m.Vertices[0] != (v3.Vec{}) {
		t.Error("translate mutated its input")
	}
}

func TestBounds(t *testing.T) {
	m := &Mesh{Vertices: []v3.Vec{
		{X: 1, Y: 2, Z: 3},
		{X: -4, Y: 5, Z: 0},
		{X: 2, Y: -1, Z: 7},
	}}
	min, max := m.Bounds()
	if min != (v3.Vec{X: -4, Y: -1, Z: 0}) {
		t.Errorf("min = %v, expected (-4,-1,0)", min)
	}
	if max != (v3.Vec{X: 2, Y: 5, Z: 7}) {
		t.Errorf("max = %v, expected (2,5,7)", max)
	}

	empty := &Mesh{}
	min, max = empty.Bounds()
	if min != (v3.Vec{}) || max != (v3.Vec{}) {
		t.Errorf("empty bounds = %v..%v, expected zero box", min, max)
	}
}
