package plan

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Builder assembles a plan fluently:
//
//	p := plan.NewBuilder().
//		Box("base", 1.0, v3.Vec{}).
//		Sphere("head", 1.0, 32, v3.Vec{X: 3}).
//		Build()
//
// Steps land in call order. Builder methods never fail; run Validate on the
// finished plan to surface parameter problems.
type Builder struct {
	plan *Plan
}

// NewBuilder creates a builder over an empty plan.
func NewBuilder() *Builder {
	return &Builder{plan: New()}
}

// Box appends a cube step with half-extent size, placed at the offset.
func (b *Builder) Box(name string, size float64, at v3.Vec) *Builder {
	b.plan.Add(&Step{Kind: StepBox, Name: name, Offset: at, Data: BoxData{Size: size}})
	return b
}

// Sphere appends a UV-sphere step.
func (b *Builder) Sphere(name string, radius float64, segments int, at v3.Vec) *Builder {
	b.plan.Add(&Step{
		Kind: StepSphere, Name: name, Offset: at,
		Data: SphereData{Radius: radius, Segments: segments},
	})
	return b
}

// Cylinder appends an open-tube step.
func (b *Builder) Cylinder(name string, radius, height float64, segments int, at v3.Vec) *Builder {
	b.plan.Add(&Step{
		Kind: StepCylinder, Name: name, Offset: at,
		Data: CylinderData{Radius: radius, Height: height, Segments: segments},
	})
	return b
}

// Torus appends a torus step.
func (b *Builder) Torus(name string, innerRadius, outerRadius float64, segments, sides int, at v3.Vec) *Builder {
	b.plan.Add(&Step{
		Kind: StepTorus, Name: name, Offset: at,
		Data: TorusData{InnerRadius: innerRadius, OuterRadius: outerRadius, Segments: segments, Sides: sides},
	})
	return b
}

// Build returns the assembled plan.
func (b *Builder) Build() *Plan {
	return b.plan
}
