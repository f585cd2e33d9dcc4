package script

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/tenon/pkg/plan"
)

// kwPrefix marks string literals that started life as :keyword arguments.
// preprocessSource rewrites :size into "__kw_size" so keyword arguments
// survive the reader without registering global symbols.
const kwPrefix = "__kw_"

// preprocessSource rewrites composition source into plain zygomys syntax:
//
//  1. :keyword becomes the string literal "__kw_keyword", so builtins can
//     accept keyword arguments.
//  2. Lisp ; comments become zygomys // comments.
//  3. Hyphens inside identifiers become underscores, since zygomys reads
//     half-width as subtraction.
//
// String literals pass through untouched, and := assignment is preserved.
func preprocessSource(source string) string {
	b := []byte(source)
	out := make([]byte, 0, len(b)+len(b)/4)

	for i := 0; i < len(b); {
		switch {
		case b[i] == '"' || b[i] == '`':
			quote := b[i]
			out = append(out, quote)
			i++
			for i < len(b) && b[i] != quote {
				if quote == '"' && b[i] == '\\' && i+1 < len(b) {
					out = append(out, b[i], b[i+1])
					i += 2
					continue
				}
				out = append(out, b[i])
				i++
			}
			if i < len(b) {
				out = append(out, quote)
				i++
			}

		case b[i] == ';':
			out = append(out, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				out = append(out, b[i])
				i++
			}

		case b[i] == ':' && i+1 < len(b) && b[i+1] == '=':
			out = append(out, ':', '=')
			i += 2

		case b[i] == ':' && i+1 < len(b) && isLetter(b[i+1]):
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			out = append(out, '"')
			out = append(out, kwPrefix...)
			out = append(out, b[i+1:j]...)
			out = append(out, '"')
			i = j

		case b[i] == '-' && i > 0 && i+1 < len(b) && isIdentChar(b[i-1]) && isLetter(b[i+1]):
			out = append(out, '_')
			i++

		default:
			out = append(out, b[i])
			i++
		}
	}

	return string(out)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isKWChar(c)
}

// isKW reports whether a sexp is a keyword marker string and returns the
// keyword name without the prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if len(str.S) <= len(kwPrefix) || str.S[:len(kwPrefix)] != kwPrefix {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds parsed builtin arguments: keyword pairs plus the leftover
// positional values in their original order.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs splits builtin arguments into keyword pairs and positionals.
// A keyword marker consumes the following sexp as its value; a trailing
// keyword with no value is dropped.
func parseArgs(args []zygo.Sexp) kwArgs {
	pa := kwArgs{kw: map[string]zygo.Sexp{}}
	for i := 0; i < len(args); i++ {
		if name, ok := isKW(args[i]); ok {
			if i+1 < len(args) {
				pa.kw[name] = args[i+1]
				i++
			}
			continue
		}
		pa.positional = append(pa.positional, args[i])
	}
	return pa
}

// expectOnly rejects keyword arguments outside the allowed set, so typos
// like :siz fail loudly instead of silently falling back to defaults.
func (pa kwArgs) expectOnly(names ...string) error {
	for got := range pa.kw {
		known := false
		for _, want := range names {
			if got == want {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown argument :%s", got)
		}
	}
	return nil
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	default:
		return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
	}
}

func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if v, ok := s.(*zygo.SexpStr); ok {
		return v.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toVec(s zygo.Sexp) (v3.Vec, error) {
	if v, ok := s.(*sexpVec); ok {
		return v.vec, nil
	}
	return v3.Vec{}, fmt.Errorf("expected vector, got %T (%s)", s, s.SexpString(nil))
}

// sexpShape wraps a pending composition step as a zygomys value. The step
// is not part of any plan until add copies it in.
type sexpShape struct {
	step *plan.Step
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	if s.step.Name != "" {
		return fmt.Sprintf("(%s %q)", s.step.Kind, s.step.Name)
	}
	return fmt.Sprintf("(%s)", s.step.Kind)
}

func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// sexpVec wraps a 3-vector as a zygomys value.
type sexpVec struct {
	vec v3.Vec
}

func (v *sexpVec) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}

func (v *sexpVec) Type() *zygo.RegisteredType { return nil }

// shapeName reads the optional :name keyword onto a step.
func shapeName(pa kwArgs, step *plan.Step, builtin string) error {
	v, ok := pa.kw["name"]
	if !ok {
		return nil
	}
	s, err := toString(v)
	if err != nil {
		return fmt.Errorf("%s: name: %w", builtin, err)
	}
	step.Name = s
	return nil
}

// registerBuiltins adds the composition vocabulary to a zygomys environment.
// Shape builtins construct pending steps; place shifts a copy of a step;
// add appends copies to the plan. Copy semantics keep a shape bound with
// def reusable: adding it twice produces two independent steps.
func registerBuiltins(env *zygo.Zlisp, p *plan.Plan) {

	// (box :size 1.0 :name "base")
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.expectOnly("size", "name"); err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		if len(pa.positional) > 0 {
			return zygo.SexpNull, fmt.Errorf("box takes keyword arguments only")
		}

		data := plan.BoxData{Size: plan.DefaultBoxSize}
		if v, ok := pa.kw["size"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("box: size: %w", err)
			}
			data.Size = f
		}

		step := &plan.Step{Kind: plan.StepBox, Data: data}
		if err := shapeName(pa, step, "box"); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{step: step}, nil
	})

	// (sphere :radius 1.0 :segments 32 :name "head")
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.expectOnly("radius", "segments", "name"); err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: %w", err)
		}
		if len(pa.positional) > 0 {
			return zygo.SexpNull, fmt.Errorf("sphere takes keyword arguments only")
		}

		data := plan.SphereData{
			Radius:   plan.DefaultSphereRadius,
			Segments: plan.DefaultSphereSegments,
		}
		if v, ok := pa.kw["radius"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("sphere: radius: %w", err)
			}
			data.Radius = f
		}
		if v, ok := pa.kw["segments"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("sphere: segments: %w", err)
			}
			data.Segments = n
		}

		step := &plan.Step{Kind: plan.StepSphere, Data: data}
		if err := shapeName(pa, step, "sphere"); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{step: step}, nil
	})

	// (cylinder :radius 0.5 :height 2.0 :segments 32 :name "leg")
	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.expectOnly("radius", "height", "segments", "name"); err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		if len(pa.positional) > 0 {
			return zygo.SexpNull, fmt.Errorf("cylinder takes keyword arguments only")
		}

		data := plan.CylinderData{
			Radius:   plan.DefaultCylinderRadius,
			Height:   plan.DefaultCylinderHeight,
			Segments: plan.DefaultCylinderSegments,
		}
		if v, ok := pa.kw["radius"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cylinder: radius: %w", err)
			}
			data.Radius = f
		}
		if v, ok := pa.kw["height"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cylinder: height: %w", err)
			}
			data.Height = f
		}
		if v, ok := pa.kw["segments"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cylinder: segments: %w", err)
			}
			data.Segments = n
		}

		step := &plan.Step{Kind: plan.StepCylinder, Data: data}
		if err := shapeName(pa, step, "cylinder"); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{step: step}, nil
	})

	// (torus :inner 0.2 :outer 0.8 :segments 32 :sides 16 :name "halo")
	env.AddFunction("torus", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.expectOnly("inner", "outer", "segments", "sides", "name"); err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		if len(pa.positional) > 0 {
			return zygo.SexpNull, fmt.Errorf("torus takes keyword arguments only")
		}

		data := plan.TorusData{
			InnerRadius: plan.DefaultTorusInner,
			OuterRadius: plan.DefaultTorusOuter,
			Segments:    plan.DefaultTorusSegments,
			Sides:       plan.DefaultTorusSides,
		}
		if v, ok := pa.kw["inner"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("torus: inner: %w", err)
			}
			data.InnerRadius = f
		}
		if v, ok := pa.kw["outer"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("torus: outer: %w", err)
			}
			data.OuterRadius = f
		}
		if v, ok := pa.kw["segments"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("torus: segments: %w", err)
			}
			data.Segments = n
		}
		if v, ok := pa.kw["sides"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("torus: sides: %w", err)
			}
			data.Sides = n
		}

		step := &plan.Step{Kind: plan.StepTorus, Data: data}
		if err := shapeName(pa, step, "torus"); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{step: step}, nil
	})

	// (vec3 x y z)
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var c [3]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: argument %d: %w", i+1, err)
			}
			c[i] = f
		}
		return &sexpVec{vec: v3.Vec{X: c[0], Y: c[1], Z: c[2]}}, nil
	})

	// (place shape :at (vec3 x y z))
	//
	// Returns a shifted copy; the input shape is untouched, and nested
	// place calls accumulate their offsets.
	env.AddFunction("place", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.expectOnly("at"); err != nil {
			return zygo.SexpNull, fmt.Errorf("place: %w", err)
		}
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("place requires a shape as its only positional argument")
		}
		shape, ok := pa.positional[0].(*sexpShape)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("place: expected shape, got %T (%s)",
				pa.positional[0], pa.positional[0].SexpString(nil))
		}

		at := v3.Vec{}
		if v, ok := pa.kw["at"]; ok {
			vec, err := toVec(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("place: at: %w", err)
			}
			at = vec
		}

		moved := *shape.step
		moved.Offset = moved.Offset.Add(at)
		return &sexpShape{step: &moved}, nil
	})

	// (add shape ...)
	//
	// Appends a copy of each shape to the plan, in argument order.
	env.AddFunction("add", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("add requires at least one shape")
		}
		var last zygo.Sexp = zygo.SexpNull
		for i, a := range args {
			shape, ok := a.(*sexpShape)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("add: argument %d: expected shape, got %T (%s)",
					i+1, a, a.SexpString(nil))
			}
			step := *shape.step
			p.Add(&step)
			last = a
		}
		return last, nil
	})
}
