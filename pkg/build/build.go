// Package build turns a composition plan into geometry: one mesh per step,
// and the combined+welded mesh of the whole composition.
package build

import (
	"fmt"

	"github.com/chazu/tenon/pkg/compose"
	"github.com/chazu/tenon/pkg/geom"
	"github.com/chazu/tenon/pkg/plan"
	"github.com/chazu/tenon/pkg/primitive"
)

// Build walks the plan and generates one mesh per step, in step order, with
// each step's offset applied and its name attached. The builder is read-only
// and never mutates the plan.
func Build(p *plan.Plan) ([]*geom.Mesh, error) {
	if p == nil {
		return nil, nil
	}

	meshes := make([]*geom.Mesh, 0, len(p.Steps))
	for i, s := range p.Steps {
		m, err := buildStep(i, s)
		if err != nil {
			return nil, fmt.Errorf("build: step %d: %w", i, err)
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

// buildStep generates the mesh for one step.
func buildStep(i int, s *plan.Step) (*geom.Mesh, error) {
	var m *geom.Mesh

	switch data := s.Data.(type) {
	case plan.BoxData:
		m = primitive.Box(data.Size)
	case plan.SphereData:
		m = primitive.Sphere(data.Radius, data.Segments)
	case plan.CylinderData:
		m = primitive.Cylinder(data.Radius, data.Height, data.Segments)
	case plan.TorusData:
		m = primitive.Torus(data.InnerRadius, data.OuterRadius, data.Segments, data.Sides)
	default:
		return nil, fmt.Errorf("%s step has unsupported data type %T", s.Kind, s.Data)
	}

	if s.Offset.X != 0 || s.Offset.Y != 0 || s.Offset.Z != 0 {
		m = m.Translate(s.Offset)
	}

	// Label the part: prefer the step's name, fall back to kind and index.
	if s.Name != "" {
		m.Name = s.Name
	} else {
		m.Name = fmt.Sprintf("%s-%d", s.Kind, i)
	}

	return m, nil
}

// Result bundles the per-part meshes with the composition output.
type Result struct {
	Parts    []*geom.Mesh
	Combined *geom.Mesh // nil until the plan has at least two parts
}

// Compose builds the plan and folds every part through a fresh pipeline.
// Combined stays nil for plans with fewer than two steps; the caller shows
// the single part (or nothing) directly in that case.
func Compose(p *plan.Plan) (*Result, error) {
	parts, err := Build(p)
	if err != nil {
		return nil, err
	}

	pipe := compose.NewPipeline()
	for i, m := range parts {
		if err := pipe.Append(m); err != nil {
			return nil, fmt.Errorf("build: compose step %d: %w", i, err)
		}
	}

	res := &Result{Parts: parts}
	if combined, ok := pipe.Result(); ok {
		res.Combined = combined
	}
	return res, nil
}
