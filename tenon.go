// Package tenon composes procedural quad meshes from scripted plans.
// It ties the pieces together: Lisp source is evaluated into a plan,
// the plan is validated and built into part meshes, the parts are
// combined and welded, and everything is flattened into render buffers.
package tenon

import (
	"log"

	"github.com/chazu/tenon/pkg/build"
	"github.com/chazu/tenon/pkg/geom"
	"github.com/chazu/tenon/pkg/plan"
	"github.com/chazu/tenon/pkg/render"
	"github.com/chazu/tenon/pkg/script"
)

// colorPalette is a default palette used to assign distinct colors to parts.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// Composer evaluates composition source end to end.
type Composer struct {
	engine *script.Engine
}

// MeshData is the JSON-serializable mesh format handed to renderers.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable evaluation error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// Result is the full outcome of evaluating composition source.
// Combined is nil until the plan yields at least two parts; single parts
// appear in Meshes only. The combined mesh carries no palette color.
type Result struct {
	Meshes   []MeshData      `json:"meshes"`
	Combined *MeshData       `json:"combined,omitempty"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewComposer creates a Composer with a fresh script engine.
func NewComposer() *Composer {
	return &Composer{
		engine: script.NewEngine(),
	}
}

// Evaluate takes Lisp source and returns mesh data + errors.
func (c *Composer) Evaluate(source string) Result {
	result := Result{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into a plan.
	p, evalErrs, err := c.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    0,
			Col:     0,
			Message: err.Error(),
		})
		return result
	}

	// Step 2: Convert eval errors.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 3: Validate the plan. Warnings ride along; errors stop the build.
	issues := plan.Validate(p)
	for _, issue := range issues {
		data := EvalErrorData{Message: issue.String()}
		if issue.Severity == plan.SeverityError {
			result.Errors = append(result.Errors, data)
		} else {
			result.Warnings = append(result.Warnings, data)
		}
	}
	if len(plan.Errors(issues)) > 0 {
		return result
	}

	// Step 4: Build the parts, combine, and weld.
	composed, err := build.Compose(p)
	if err != nil {
		log.Printf("Compose error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    0,
			Col:     0,
			Message: "composition failed: " + err.Error(),
		})
		return result
	}

	// Step 5: Flatten meshes into render buffers.
	for i, m := range composed.Parts {
		color := colorPalette[i%len(colorPalette)]
		md, err := toMeshData(m, color)
		if err != nil {
			log.Printf("Buffer error for part %q: %v", m.Name, err)
			result.Errors = append(result.Errors, EvalErrorData{
				Message: "buffering failed: " + err.Error(),
			})
			return result
		}
		result.Meshes = append(result.Meshes, md)
	}

	if composed.Combined != nil {
		md, err := toMeshData(composed.Combined, "")
		if err != nil {
			log.Printf("Buffer error for combined mesh: %v", err)
			result.Errors = append(result.Errors, EvalErrorData{
				Message: "buffering failed: " + err.Error(),
			})
			return result
		}
		md.Name = "combined"
		result.Combined = &md
	}

	return result
}

func toMeshData(m *geom.Mesh, color string) (MeshData, error) {
	buf, err := render.Buffers(m)
	if err != nil {
		return MeshData{}, err
	}
	return MeshData{
		Vertices: buf.Vertices,
		Normals:  buf.Normals,
		Indices:  buf.Indices,
		Name:     buf.Name,
		Color:    color,
	}, nil
}
