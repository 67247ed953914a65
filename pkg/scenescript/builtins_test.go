package scenescript

import (
	"testing"

	"github.com/WilliamC07/graphics-final/pkg/core"
	"github.com/WilliamC07/graphics-final/pkg/material"
)

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(sphere :radius 0.5)`,
			expect: `(sphere "__kw_radius" 0.5)`,
		},
		{
			name:   "hyphenated keywords",
			input:  `(samples :per-pixel 100 :max-depth 8)`,
			expect: `(samples "__kw_per-pixel" 100 "__kw_max-depth" 8)`,
		},
		{
			name:   "keyword inside string preserved",
			input:  `"a string with :keyword inside"`,
			expect: `"a string with :keyword inside"`,
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(def my-glass (dielectric :index 2.4))`,
			expect: `(def my_glass (dielectric "__kw_index" 2.4))`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "negative literals preserved",
			input:  `(vec3 0 -100.5 -1)`,
			expect: `(vec3 0 -100.5 -1)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; sky setup :zenith stays literal`,
			expect: `// sky setup :zenith stays literal`,
		},
		{
			name:   "single semicolon comment",
			input:  `; plain comment`,
			expect: `// plain comment`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFullScript(t *testing.T) {
	eng := NewEngine()

	source := `
;; Three spheres over a ground ball, lit from above.
(def ground (lambertian :albedo (color 0.8 0.8 0.0)))
(def my-glass (dielectric :index 2.4))

(camera :fov 40)
(background :zenith (color 0.3 0.4 0.9))
(samples :per-pixel 10 :max-depth 8)

(sphere :center (vec3 0 -100.5 -4) :radius 100 :material ground)
(sphere :center (vec3 0 0 -4) :radius 0.5
        :material (metal :albedo (color 0.8 0.6 0.2) :fuzz 0.3))
(sphere :center (vec3 -1 0 -4) :radius 0.5 :material my-glass)

(light :position (vec3 2 4 0))
`
	result, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.GetPrimitiveCount() != 3 {
		t.Fatalf("Expected 3 primitives, got %d", result.GetPrimitiveCount())
	}

	ground, ok := result.Spheres[0].Material.(*material.Lambertian)
	if !ok {
		t.Fatalf("Expected Lambertian ground, got %T", result.Spheres[0].Material)
	}
	if !ground.Albedo.Equals(core.NewVec3(0.8, 0.8, 0.0)) {
		t.Errorf("Expected ground albedo (0.8 0.8 0), got %v", ground.Albedo)
	}
	if result.Spheres[0].Radius != 100 {
		t.Errorf("Expected ground radius 100, got %v", result.Spheres[0].Radius)
	}
	if !result.Spheres[0].Center.Equals(core.NewVec3(0, -100.5, -4)) {
		t.Errorf("Expected ground center (0 -100.5 -4), got %v", result.Spheres[0].Center)
	}

	gold, ok := result.Spheres[1].Material.(*material.Metal)
	if !ok {
		t.Fatalf("Expected Metal sphere, got %T", result.Spheres[1].Material)
	}
	if !gold.Albedo.Equals(core.NewVec3(0.8, 0.6, 0.2)) {
		t.Errorf("Expected metal albedo (0.8 0.6 0.2), got %v", gold.Albedo)
	}
	if gold.Fuzzness != 0.3 {
		t.Errorf("Expected fuzz 0.3, got %v", gold.Fuzzness)
	}

	glass, ok := result.Spheres[2].Material.(*material.Dielectric)
	if !ok {
		t.Fatalf("Expected Dielectric sphere, got %T", result.Spheres[2].Material)
	}
	if glass.RefractiveIndex != 2.4 {
		t.Errorf("Expected refractive index 2.4, got %v", glass.RefractiveIndex)
	}

	if result.CameraConfig.VFov != 40 {
		t.Errorf("Expected fov 40, got %v", result.CameraConfig.VFov)
	}

	top, bottom := result.GetBackgroundColors()
	if !top.Equals(core.NewVec3(0.3, 0.4, 0.9)) {
		t.Errorf("Expected zenith (0.3 0.4 0.9), got %v", top)
	}
	if !bottom.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Expected default nadir (1 1 1), got %v", bottom)
	}

	if result.SamplingConfig.SamplesPerPixel != 10 {
		t.Errorf("Expected 10 samples per pixel, got %d", result.SamplingConfig.SamplesPerPixel)
	}
	if result.SamplingConfig.MaxDepth != 8 {
		t.Errorf("Expected max depth 8, got %d", result.SamplingConfig.MaxDepth)
	}
	if result.SamplingConfig.Seed != 42 {
		t.Errorf("Expected default seed to survive, got %d", result.SamplingConfig.Seed)
	}
	if !result.SamplingConfig.Jitter {
		t.Error("Expected jitter to stay enabled")
	}

	if len(result.Lights) != 1 {
		t.Fatalf("Expected 1 light, got %d", len(result.Lights))
	}
	if !result.Lights[0].Position.Equals(core.NewVec3(2, 4, 0)) {
		t.Errorf("Expected light at (2 4 0), got %v", result.Lights[0].Position)
	}
	if !result.Lights[0].Color.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Expected default white light, got %v", result.Lights[0].Color)
	}
}

func TestMaterialDefaults(t *testing.T) {
	eng := NewEngine()

	source := `
(sphere :center (vec3 -1 0 -2) :radius 0.5 :material (lambertian))
(sphere :center (vec3 0 0 -2) :radius 0.5 :material (metal))
(sphere :center (vec3 1 0 -2) :radius 0.5 :material (dielectric))
(sphere :center (vec3 2 0 -2) :radius 0.5 :material (metal :fuzz 3))
`
	result, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.GetPrimitiveCount() != 4 {
		t.Fatalf("Expected 4 primitives, got %d", result.GetPrimitiveCount())
	}

	matte := result.Spheres[0].Material.(*material.Lambertian)
	if !matte.Albedo.Equals(core.NewVec3(0.5, 0.5, 0.5)) {
		t.Errorf("Expected default lambertian albedo (0.5 0.5 0.5), got %v", matte.Albedo)
	}

	shiny := result.Spheres[1].Material.(*material.Metal)
	if !shiny.Albedo.Equals(core.NewVec3(0.8, 0.8, 0.8)) {
		t.Errorf("Expected default metal albedo (0.8 0.8 0.8), got %v", shiny.Albedo)
	}
	if shiny.Fuzzness != 0 {
		t.Errorf("Expected default fuzz 0, got %v", shiny.Fuzzness)
	}

	glass := result.Spheres[2].Material.(*material.Dielectric)
	if glass.RefractiveIndex != 1.5 {
		t.Errorf("Expected default refractive index 1.5, got %v", glass.RefractiveIndex)
	}

	clamped := result.Spheres[3].Material.(*material.Metal)
	if clamped.Fuzzness != 1.0 {
		t.Errorf("Expected fuzz clamped to 1, got %v", clamped.Fuzzness)
	}
}

func TestVariablesAndArithmetic(t *testing.T) {
	eng := NewEngine()

	source := `
(def r 0.5)
(def z (- 0 4))
(sphere :center (vec3 0 0 z) :radius r
        :material (lambertian :albedo (color 0.1 0.2 0.5)))
`
	result, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.GetPrimitiveCount() != 1 {
		t.Fatalf("Expected 1 primitive, got %d", result.GetPrimitiveCount())
	}

	sphere := result.Spheres[0]
	if !sphere.Center.Equals(core.NewVec3(0, 0, -4)) {
		t.Errorf("Expected center (0 0 -4), got %v", sphere.Center)
	}
	if sphere.Radius != 0.5 {
		t.Errorf("Expected radius 0.5, got %v", sphere.Radius)
	}
}

func TestBackgroundBothEnds(t *testing.T) {
	eng := NewEngine()

	source := `(background :zenith (color 0.1 0.1 0.3) :nadir (color 0.9 0.9 0.8))`
	result, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	top, bottom := result.GetBackgroundColors()
	if !top.Equals(core.NewVec3(0.1, 0.1, 0.3)) {
		t.Errorf("Expected zenith (0.1 0.1 0.3), got %v", top)
	}
	if !bottom.Equals(core.NewVec3(0.9, 0.9, 0.8)) {
		t.Errorf("Expected nadir (0.9 0.9 0.8), got %v", bottom)
	}
}

func TestMalformedScripts(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			name:   "missing center",
			source: `(sphere :radius 0.5 :material (lambertian))`,
		},
		{
			name:   "missing radius",
			source: `(sphere :center (vec3 0 0 -1) :material (lambertian))`,
		},
		{
			name:   "missing material",
			source: `(sphere :center (vec3 0 0 -1) :radius 0.5)`,
		},
		{
			name:   "center is not a vec3",
			source: `(sphere :center 5 :radius 0.5 :material (lambertian))`,
		},
		{
			name:   "material is not a material",
			source: `(sphere :center (vec3 0 0 -1) :radius 0.5 :material (vec3 1 1 1))`,
		},
		{
			name:   "vec3 wrong arity",
			source: `(vec3 1 2)`,
		},
		{
			name:   "fov out of range",
			source: `(camera :fov 220)`,
		},
		{
			name:   "samples must be integer",
			source: `(samples :per-pixel 1.5)`,
		},
		{
			name:   "negative refractive index",
			source: `(dielectric :index -1)`,
		},
		{
			name:   "light without position",
			source: `(light :color (color 1 1 1))`,
		},
		{
			name:   "unknown builtin",
			source: `(cube :size 1)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := NewEngine()
			result, err := eng.Evaluate(tt.source)
			if err == nil {
				t.Fatal("expected error, got none")
			}
			if err.Error() == "" {
				t.Error("error message should not be empty")
			}
			if result != nil {
				t.Error("expected nil scene on script error")
			}
		})
	}
}

func TestSandboxBlocksSystemAccess(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			name:   "shell access",
			source: `(system "true")`,
		},
		{
			name:   "loading other files",
			source: `(source "other.lisp")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := NewEngine()
			result, err := eng.Evaluate(tt.source)
			if err == nil {
				t.Fatal("expected sandboxed builtin to be unavailable")
			}
			if result != nil {
				t.Error("expected nil scene")
			}
		})
	}
}
