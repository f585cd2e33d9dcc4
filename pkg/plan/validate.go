package plan

import "fmt"

// Severity indicates whether a finding blocks building or is advisory.
type Severity int

const (
	SeverityError   Severity = iota // blocks building
	SeverityWarning                 // informational
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Issue describes a single validation finding.
type Issue struct {
	Step     int // index of the offending step, -1 for plan-level findings
	Message  string
	Severity Severity
}

func (i Issue) String() string {
	if i.Step < 0 {
		return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("[%s] step %d: %s", i.Severity, i.Step, i.Message)
}

// Validate checks a plan and returns its findings. Structural problems
// (missing or mismatched step data, duplicate names) are errors; degenerate
// part parameters are warnings only, because generators accept them and
// produce degenerate geometry by contract. Validate never mutates the plan.
func Validate(p *Plan) []Issue {
	var issues []Issue
	issues = append(issues, validateSteps(p)...)
	issues = append(issues, validateNames(p)...)
	issues = append(issues, validateParameters(p)...)
	return issues
}

// Errors filters issues down to the blocking ones.
func Errors(issues []Issue) []Issue {
	var errs []Issue
	for _, i := range issues {
		if i.Severity == SeverityError {
			errs = append(errs, i)
		}
	}
	return errs
}

// validateSteps checks that every step carries data matching its kind.
func validateSteps(p *Plan) []Issue {
	var issues []Issue
	for i, s := range p.Steps {
		if s.Data == nil {
			issues = append(issues, Issue{
				Step:     i,
				Message:  fmt.Sprintf("%s step has no parameters", s.Kind),
				Severity: SeverityError,
			})
			continue
		}

		ok := false
		switch s.Data.(type) {
		case BoxData:
			ok = s.Kind == StepBox
		case SphereData:
			ok = s.Kind == StepSphere
		case CylinderData:
			ok = s.Kind == StepCylinder
		case TorusData:
			ok = s.Kind == StepTorus
		}
		if !ok {
			issues = append(issues, Issue{
				Step:     i,
				Message:  fmt.Sprintf("%s step carries %T parameters", s.Kind, s.Data),
				Severity: SeverityError,
			})
		}
	}
	return issues
}

// validateNames checks that non-empty step names are unique, since Lookup
// resolves by name.
func validateNames(p *Plan) []Issue {
	var issues []Issue
	seen := make(map[string]int)
	for i, s := range p.Steps {
		if s.Name == "" {
			continue
		}
		if first, dup := seen[s.Name]; dup {
			issues = append(issues, Issue{
				Step:     i,
				Message:  fmt.Sprintf("duplicate name %q (first used by step %d)", s.Name, first),
				Severity: SeverityError,
			})
			continue
		}
		seen[s.Name] = i
	}
	return issues
}

// validateParameters flags degenerate part parameters. All of these build
// fine; the findings tell the user why the output may look collapsed.
func validateParameters(p *Plan) []Issue {
	var issues []Issue
	warn := func(step int, format string, args ...interface{}) {
		issues = append(issues, Issue{
			Step:     step,
			Message:  fmt.Sprintf(format, args...),
			Severity: SeverityWarning,
		})
	}

	for i, s := range p.Steps {
		switch d := s.Data.(type) {
		case BoxData:
			if d.Size <= 0 {
				warn(i, "box size %v collapses the part to a point or inverts it", d.Size)
			}
		case SphereData:
			if d.Radius <= 0 {
				warn(i, "sphere radius %v collapses the part", d.Radius)
			}
			if d.Segments < 3 {
				warn(i, "sphere with %d segments is degenerate", d.Segments)
			}
		case CylinderData:
			if d.Radius <= 0 {
				warn(i, "cylinder radius %v collapses the part", d.Radius)
			}
			if d.Height <= 0 {
				warn(i, "cylinder height %v collapses the part", d.Height)
			}
			if d.Segments < 3 {
				warn(i, "cylinder with %d segments is degenerate", d.Segments)
			}
		case TorusData:
			if d.InnerRadius <= 0 {
				warn(i, "torus tube radius %v collapses the tube", d.InnerRadius)
			}
			if d.Segments < 3 || d.Sides < 3 {
				warn(i, "torus with %d segments and %d sides is degenerate", d.Segments, d.Sides)
			}
			if d.InnerRadius >= d.OuterRadius && d.InnerRadius > 0 {
				warn(i, "torus tube radius %v is not smaller than ring radius %v, the surface self-intersects",
					d.InnerRadius, d.OuterRadius)
			}
		}
	}
	return issues
}
