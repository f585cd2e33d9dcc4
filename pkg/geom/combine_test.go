package geom

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestCombineCounts(t *testing.T) {
	a := square(v3.Vec{})
	b := square(v3.Vec{X: 5})

	c, err := Combine(a, b)
	if err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	if c.VertexCount() != 8 {
		t.Errorf("combined vertex count = %d, expected 8", c.VertexCount())
	}
	if c.FaceCount() != 2 {
		t.Errorf("combined face count = %d, expected 2", c.FaceCount())
	}
	if err := c.Validate(); err != nil {
		t.Errorf("combined mesh invalid: %v", err)
	}
}

func TestCombineOffset(t *testing.T) {
	a := square(v3.Vec{})
	b := square(v3.Vec{X: 5})

	c, err := Combine(a, b)
	if err != nil {
		t.Fatalf("Combine failed: %v", err)
	}

	// a's face is untouched, b's face ids are shifted by a's vertex count.
	if c.Faces[0] != (Quad{0, 1, 2, 3}) {
		t.Errorf("face 0 = %v, expected {0 1 2 3}", c.Faces[0])
	}
	if c.Faces[1] != (Quad{4, 5, 6, 7}) {
		t.Errorf("face 1 = %v, expected {4 5 6 7}", c.Faces[1])
	}
	// The shifted ids still reference b's points.
	if c.Vertices[c.Faces[1][0]] != b.Vertices[0] {
		t.Errorf("offset face references %v, expected %v", c.Vertices[c.Faces[1][0]], b.Vertices[0])
	}
}

func TestCombineLeavesInputsIntact(t *testing.T) {
	a := square(v3.Vec{})
	b := square(v3.Vec{X: 5})

	c, err := Combine(a, b)
	if err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	c.Vertices[0].X = 42
	c.Faces[0][0] = 7

	if a.Vertices[0].X != 0 || a.Faces[0][0] != 0 {
		t.Error("Combine shares buffers with first input")
	}
	if b.Faces[0] != (Quad{0, 1, 2, 3}) {
		t.Errorf("Combine modified second input's faces: %v", b.Faces[0])
	}
}

func TestCombineRejectsMalformed(t *testing.T) {
	good := square(v3.Vec{})
	bad := square(v3.Vec{X: 5})
	bad.Faces[0][1] = 9

	if _, err := Combine(bad, good); err == nil {
		t.Error("expected error for malformed first mesh")
	}
	if _, err := Combine(good, bad); err == nil {
		t.Error("expected error for malformed second mesh")
	}
}

func TestConcatEmpty(t *testing.T) {
	c, err := Concat(nil)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if !c.IsEmpty() || c.FaceCount() != 0 {
		t.Errorf("Concat(nil) = %v, expected empty mesh", c)
	}
}

func TestConcatSingleton(t *testing.T) {
	m := square(v3.Vec{})
	c, err := Concat([]*Mesh{m})
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if c.VertexCount() != 4 || c.FaceCount() != 1 || c.Faces[0] != m.Faces[0] {
		t.Errorf("singleton result = %v, expected the same geometry", c)
	}
	// The result is a copy, not the input itself.
	c.Vertices[0].X = 42
	if m.Vertices[0].X != 0 {
		t.Error("singleton Concat returned a mesh sharing buffers with its input")
	}
}

func TestConcatOrder(t *testing.T) {
	a := square(v3.Vec{})
	b := square(v3.Vec{X: 5})
	d := square(v3.Vec{X: 10})

	c, err := Concat([]*Mesh{a, b, d})
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if c.VertexCount() != 12 || c.FaceCount() != 3 {
		t.Fatalf("concat counts = %d/%d, expected 12/3", c.VertexCount(), c.FaceCount())
	}

	// Vertex order is list order, face ids shift by the running offset.
	want := []Quad{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}}
	for i, f := range c.Faces {
		if f != want[i] {
			t.Errorf("face %d = %v, expected %v", i, f, want[i])
		}
	}
	if c.Vertices[4] != b.Vertices[0] || c.Vertices[8] != d.Vertices[0] {
		t.Error("concat vertex order is not the input list order")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("concat result invalid: %v", err)
	}
}

func TestConcatRejectsMalformed(t *testing.T) {
	bad := square(v3.Vec{})
	bad.Faces[0][0] = -2

	if _, err := Concat([]*Mesh{bad}); err == nil {
		t.Error("expected error for malformed singleton")
	}
	if _, err := Concat([]*Mesh{square(v3.Vec{}), bad}); err == nil {
		t.Error("expected error for malformed mesh mid-list")
	}
}
