package plan

import (
	"strings"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func figure() *Plan {
	return NewBuilder().
		Box("base", 1.0, v3.Vec{}).
		Sphere("head", 1.0, 32, v3.Vec{X: 2}).
		Cylinder("neck", 0.5, 2.0, 32, v3.Vec{X: 4}).
		Torus("halo", 0.2, 0.8, 32, 16, v3.Vec{X: 6}).
		Build()
}

func TestBuilderOrder(t *testing.T) {
	p := figure()
	if p.StepCount() != 4 {
		t.Fatalf("step count = %d, expected 4", p.StepCount())
	}

	wantKinds := []StepKind{StepBox, StepSphere, StepCylinder, StepTorus}
	wantNames := []string{"base", "head", "neck", "halo"}
	for i, s := range p.Steps {
		if s.Kind != wantKinds[i] {
			t.Errorf("step %d kind = %s, expected %s", i, s.Kind, wantKinds[i])
		}
		if s.Name != wantNames[i] {
			t.Errorf("step %d name = %q, expected %q", i, s.Name, wantNames[i])
		}
		if s.Offset.X != float64(2*i) {
			t.Errorf("step %d offset.X = %v, expected %v", i, s.Offset.X, 2*i)
		}
	}

	d, ok := p.Steps[3].Data.(TorusData)
	if !ok {
		t.Fatalf("step 3 data = %T, expected TorusData", p.Steps[3].Data)
	}
	if d.InnerRadius != 0.2 || d.OuterRadius != 0.8 || d.Segments != 32 || d.Sides != 16 {
		t.Errorf("torus data = %+v, expected {0.2 0.8 32 16}", d)
	}
}

func TestLookup(t *testing.T) {
	p := figure()
	s := p.Lookup("neck")
	if s == nil || s.Kind != StepCylinder {
		t.Fatalf("Lookup(neck) = %v, expected the cylinder step", s)
	}
	if p.Lookup("missing") != nil {
		t.Error("Lookup of unknown name should return nil")
	}
	if p.Lookup("") != nil {
		t.Error("Lookup of empty name should return nil")
	}
}

func TestStepKindString(t *testing.T) {
	cases := map[StepKind]string{
		StepBox:      "box",
		StepSphere:   "sphere",
		StepCylinder: "cylinder",
		StepTorus:    "torus",
		StepKind(42): "unknown",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Errorf("StepKind(%d).String() = %q, expected %q", int(k), k.String(), want)
		}
	}
}

func TestValidateCleanPlan(t *testing.T) {
	issues := Validate(figure())
	if len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestValidateMissingData(t *testing.T) {
	p := New()
	p.Add(&Step{Kind: StepBox, Name: "hollow"})

	issues := Validate(p)
	errs := Errors(issues)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", issues)
	}
	if errs[0].Step != 0 || !strings.Contains(errs[0].Message, "no parameters") {
		t.Errorf("unexpected issue: %v", errs[0])
	}
}

func TestValidateKindMismatch(t *testing.T) {
	p := New()
	p.Add(&Step{Kind: StepBox, Data: SphereData{Radius: 1, Segments: 32}})

	errs := Errors(Validate(p))
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, "SphereData") {
		t.Errorf("mismatch message should name the data type: %v", errs[0])
	}
}

func TestValidateDuplicateNames(t *testing.T) {
	p := NewBuilder().
		Box("part", 1.0, v3.Vec{}).
		Box("part", 2.0, v3.Vec{X: 3}).
		Build()

	errs := Errors(Validate(p))
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0].Step != 1 || !strings.Contains(errs[0].Message, `"part"`) {
		t.Errorf("unexpected issue: %v", errs[0])
	}
}

func TestValidateDegenerateParametersWarn(t *testing.T) {
	p := NewBuilder().
		Box("dot", 0, v3.Vec{}).
		Sphere("coin", 1.0, 2, v3.Vec{X: 2}).
		Torus("fat", 0.9, 0.8, 32, 16, v3.Vec{X: 4}).
		Build()

	issues := Validate(p)
	if len(Errors(issues)) != 0 {
		t.Fatalf("degenerate parameters must not be errors: %v", issues)
	}
	if len(issues) != 3 {
		t.Fatalf("expected 3 warnings, got %v", issues)
	}
	for _, i := range issues {
		if i.Severity != SeverityWarning {
			t.Errorf("issue %v has severity %s, expected warning", i, i.Severity)
		}
	}
}

func TestIssueString(t *testing.T) {
	i := Issue{Step: 2, Message: "sphere with 1 segments is degenerate", Severity: SeverityWarning}
	got := i.String()
	if !strings.Contains(got, "warning") || !strings.Contains(got, "step 2") {
		t.Errorf("Issue.String() = %q, expected severity and step index", got)
	}

	planLevel := Issue{Step: -1, Message: "empty plan", Severity: SeverityError}
	if strings.Contains(planLevel.String(), "step") {
		t.Errorf("plan-level issue should not mention a step: %q", planLevel.String())
	}
}
