package scenescript

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/WilliamC07/graphics-final/pkg/core"
	"github.com/WilliamC07/graphics-final/pkg/geometry"
	"github.com/WilliamC07/graphics-final/pkg/material"
	"github.com/WilliamC07/graphics-final/pkg/raster"
	"github.com/WilliamC07/graphics-final/pkg/renderer"
	"github.com/WilliamC07/graphics-final/pkg/scene"
)

// preprocessSource rewrites scene script source into a form zygomys accepts.
// Three rewrites happen, none of them inside string literals:
//
//	:keyword  -> "__kw_keyword"  keywords become tagged string literals the
//	                             builtins can recognize, so no global symbols
//	                             need registering
//	; comment -> // comment      zygomys only knows // line comments
//	foo-bar   -> foo_bar         zygomys reads a bare hyphen as subtraction,
//	                             so kebab-case identifiers are renamed
//
// The := assignment operator and minus signs in arithmetic are left alone.
func preprocessSource(source string) string {
	b := []byte(source)
	out := make([]byte, 0, len(b)+len(b)/4)

	for i := 0; i < len(b); {
		switch {
		case b[i] == '"' || b[i] == '`':
			// Copy string literals untouched. Double-quoted strings may
			// escape the closing quote, backtick strings may not.
			quote := b[i]
			out = append(out, b[i])
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
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// kwPrefix marks keyword arguments after preprocessing.
const kwPrefix = "__kw_"

// sexpVec3 carries a vector or color between builtins.
type sexpVec3 struct {
	vec core.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpMaterial carries a constructed material between builtins, so scripts
// can bind one with def and reuse it across spheres.
type sexpMaterial struct {
	mat  core.Material
	kind string
}

func (m *sexpMaterial) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(material %s)", m.kind)
}
func (m *sexpMaterial) Type() *zygo.RegisteredType { return nil }

// isKW reports whether a Sexp is a preprocessed keyword string, returning
// the keyword name without the prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds a parsed mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			i++
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i += 2
		} else {
			// Trailing keyword with no value.
			result.kw[name] = zygo.SexpNull
			i++
		}
	}
	return result
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

func toVec3(s zygo.Sexp) (core.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return core.Vec3{}, fmt.Errorf("expected vec3 or color, got %T (%s)", s, s.SexpString(nil))
}

func toMaterial(s zygo.Sexp) (core.Material, error) {
	if m, ok := s.(*sexpMaterial); ok {
		return m.mat, nil
	}
	return nil, fmt.Errorf("expected material, got %T (%s)", s, s.SexpString(nil))
}

// sceneBuilder accumulates everything a script declares. build turns it into
// a Scene, leaving defaults in place for whatever the script never mentioned.
type sceneBuilder struct {
	fov      float64
	zenith   *core.Vec3
	nadir    *core.Vec3
	perPixel int
	maxDepth int
	spheres  []*geometry.Sphere
	lights   []raster.PointLight
}

func newSceneBuilder() *sceneBuilder {
	return &sceneBuilder{}
}

func (b *sceneBuilder) build() *scene.Scene {
	result := scene.NewScene(renderer.CameraConfig{VFov: b.fov})

	if b.zenith != nil || b.nadir != nil {
		top, bottom := result.GetBackgroundColors()
		if b.zenith != nil {
			top = *b.zenith
		}
		if b.nadir != nil {
			bottom = *b.nadir
		}
		result.SetBackground(top, bottom)
	}

	result.SamplingConfig = renderer.MergeSamplingConfig(result.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: b.perPixel,
		MaxDepth:        b.maxDepth,
	})

	for _, sphere := range b.spheres {
		result.AddSphere(sphere)
	}
	for _, light := range b.lights {
		result.AddLight(light)
	}

	return result
}

// registerBuiltins installs the scene description builtins into a zygomys
// environment. The builtins populate the given builder as the script runs.
//
// Source must be preprocessed with preprocessSource first so that :keyword
// tokens arrive as recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, b *sceneBuilder) {

	// (vec3 x y z) and its alias (color r g b)
	makeVec3 := func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("%s requires exactly 3 arguments, got %d", name, len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: x: %w", name, err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: y: %w", name, err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: z: %w", name, err)
		}
		return &sexpVec3{vec: core.NewVec3(x, y, z)}, nil
	}
	env.AddFunction("vec3", makeVec3)
	env.AddFunction("color", makeVec3)

	// (lambertian :albedo (color r g b))
	env.AddFunction("lambertian", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		albedo := core.NewVec3(0.5, 0.5, 0.5)
		if v, ok := pa.kw["albedo"]; ok {
			a, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("lambertian: albedo: %w", err)
			}
			albedo = a
		}

		return &sexpMaterial{mat: material.NewLambertian(albedo), kind: "lambertian"}, nil
	})

	// (metal :albedo (color r g b) :fuzz f)
	env.AddFunction("metal", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		albedo := core.NewVec3(0.8, 0.8, 0.8)
		if v, ok := pa.kw["albedo"]; ok {
			a, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("metal: albedo: %w", err)
			}
			albedo = a
		}

		fuzz := 0.0
		if v, ok := pa.kw["fuzz"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("metal: fuzz: %w", err)
			}
			fuzz = f
		}

		return &sexpMaterial{mat: material.NewMetal(albedo, fuzz), kind: "metal"}, nil
	})

	// (dielectric :index n)
	env.AddFunction("dielectric", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		index := 1.5
		if v, ok := pa.kw["index"]; ok {
			n, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("dielectric: index: %w", err)
			}
			index = n
		}
		if index <= 0 {
			return zygo.SexpNull, fmt.Errorf("dielectric: index must be positive, got %g", index)
		}

		return &sexpMaterial{mat: material.NewDielectric(index), kind: "dielectric"}, nil
	})

	// (sphere :center (vec3 x y z) :radius r :material m)
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		v, ok := pa.kw["center"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("sphere: missing :center")
		}
		center, err := toVec3(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: center: %w", err)
		}

		v, ok = pa.kw["radius"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("sphere: missing :radius")
		}
		radius, err := toFloat64(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: radius: %w", err)
		}

		v, ok = pa.kw["material"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("sphere: missing :material")
		}
		mat, err := toMaterial(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: material: %w", err)
		}

		b.spheres = append(b.spheres, geometry.NewSphere(center, radius, mat))
		return zygo.SexpNull, nil
	})

	// (light :position (vec3 x y z) :color (color r g b))
	env.AddFunction("light", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		v, ok := pa.kw["position"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("light: missing :position")
		}
		position, err := toVec3(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("light: position: %w", err)
		}

		color := core.NewVec3(1, 1, 1)
		if v, ok := pa.kw["color"]; ok {
			c, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("light: color: %w", err)
			}
			color = c
		}

		b.lights = append(b.lights, raster.NewPointLight(position, color))
		return zygo.SexpNull, nil
	})

	// (camera :fov degrees)
	env.AddFunction("camera", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		v, ok := pa.kw["fov"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("camera: missing :fov")
		}
		fov, err := toFloat64(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("camera: fov: %w", err)
		}
		if fov <= 0 || fov >= 180 {
			return zygo.SexpNull, fmt.Errorf("camera: fov must be between 0 and 180 degrees, got %g", fov)
		}

		b.fov = fov
		return zygo.SexpNull, nil
	})

	// (background :zenith (color r g b) :nadir (color r g b))
	env.AddFunction("background", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		if v, ok := pa.kw["zenith"]; ok {
			c, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("background: zenith: %w", err)
			}
			b.zenith = &c
		}
		if v, ok := pa.kw["nadir"]; ok {
			c, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("background: nadir: %w", err)
			}
			b.nadir = &c
		}

		return zygo.SexpNull, nil
	})

	// (samples :per-pixel n :max-depth d)
	env.AddFunction("samples", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		if v, ok := pa.kw["per-pixel"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("samples: per-pixel: %w", err)
			}
			if n < 1 {
				return zygo.SexpNull, fmt.Errorf("samples: per-pixel must be at least 1, got %d", n)
			}
			b.perPixel = n
		}
		if v, ok := pa.kw["max-depth"]; ok {
			d, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("samples: max-depth: %w", err)
			}
			if d < 1 {
				return zygo.SexpNull, fmt.Errorf("samples: max-depth must be at least 1, got %d", d)
			}
			b.maxDepth = d
		}

		return zygo.SexpNull, nil
	})
}
