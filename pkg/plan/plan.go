// Package plan models a composition as an ordered list of part steps.
// A plan is declarative: it records which primitives to generate, with what
// parameters, and where to place them. The build package turns it into
// geometry.
package plan

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// StepKind enumerates the part types a plan can request.
type StepKind int

const (
	StepBox StepKind = iota
	StepSphere
	StepCylinder
	StepTorus
)

func (k StepKind) String() string {
	switch k {
	case StepBox:
		return "box"
	case StepSphere:
		return "sphere"
	case StepCylinder:
		return "cylinder"
	case StepTorus:
		return "torus"
	default:
		return "unknown"
	}
}

// Step is one part of a composition.
type Step struct {
	Kind   StepKind  `json:"kind"`
	Name   string    `json:"name,omitempty"`
	Offset v3.Vec    `json:"offset"` // translation applied after generation
	Data   ShapeData `json:"data"`
}

// ShapeData is the interface for kind-specific step parameters.
type ShapeData interface {
	shapeData() // marker method restricting implementations to this package
}

// Plan is the top-level structure produced by script evaluation or the
// Builder. Steps keep their append order; the composition result depends on
// it (vertex ids and weld scan order follow part order).
type Plan struct {
	Steps   []*Step `json:"steps"`
	Version uint64  `json:"version"`
}

// New creates an empty plan.
func New() *Plan {
	return &Plan{}
}

// Add appends a step.
func (p *Plan) Add(s *Step) {
	p.Steps = append(p.Steps, s)
}

// StepCount returns the number of steps.
func (p *Plan) StepCount() int {
	return len(p.Steps)
}

// Lookup returns the first step with the given user-assigned name, or nil.
func (p *Plan) Lookup(name string) *Step {
	if name == "" {
		return nil
	}
	for _, s := range p.Steps {
		if s.Name == name {
			return s
		}
	}
	return nil
}
