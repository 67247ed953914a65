package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{
			name:     "Add",
			result:   a.Add(b),
			expected: NewVec3(5, -3, 9),
		},
		{
			name:     "Subtract",
			result:   a.Subtract(b),
			expected: NewVec3(-3, 7, -3),
		},
		{
			name:     "Multiply by scalar",
			result:   a.Multiply(2),
			expected: NewVec3(2, 4, 6),
		},
		{
			name:     "MultiplyVec component-wise",
			result:   a.MultiplyVec(b),
			expected: NewVec3(4, -10, 18),
		},
		{
			name:     "Negate",
			result:   a.Negate(),
			expected: NewVec3(-1, -2, -3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotCross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if dot := x.Dot(y); dot != 0 {
		t.Errorf("Expected orthogonal dot product 0, got %f", dot)
	}
	if dot := NewVec3(1, 2, 3).Dot(NewVec3(4, 5, 6)); dot != 32 {
		t.Errorf("Expected dot product 32, got %f", dot)
	}

	if cross := x.Cross(y); !cross.Equals(NewVec3(0, 0, 1)) {
		t.Errorf("Expected x cross y = z, got %v", cross)
	}
	if cross := y.Cross(x); !cross.Equals(NewVec3(0, 0, -1)) {
		t.Errorf("Expected y cross x = -z, got %v", cross)
	}
}

func TestVec3_LengthNormalize(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if length := v.Length(); length != 5 {
		t.Errorf("Expected length 5, got %f", length)
	}
	if lengthSq := v.LengthSquared(); lengthSq != 25 {
		t.Errorf("Expected squared length 25, got %f", lengthSq)
	}

	const tolerance = 1e-9
	unit := v.Normalize()
	if math.Abs(unit.Length()-1) > tolerance {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}
	if unit.Subtract(NewVec3(0.6, 0.8, 0)).Length() > tolerance {
		t.Errorf("Expected direction preserved, got %v", unit)
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if !zero.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	clamped := v.Clamp(0, 0.999)
	expected := NewVec3(0, 0.5, 0.999)

	if !clamped.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, clamped)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	// Gamma 2 is a plain square root: 0.25 becomes 0.5
	corrected := NewVec3(0.25, 1.0, 0.0).GammaCorrect(2.0)
	expected := NewVec3(0.5, 1.0, 0.0)

	const tolerance = 1e-9
	if corrected.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, corrected)
	}
}

func TestVec3_Luminance(t *testing.T) {
	const tolerance = 1e-9

	if lum := NewVec3(1, 1, 1).Luminance(); math.Abs(lum-1) > tolerance {
		t.Errorf("Expected white luminance 1, got %f", lum)
	}
	if lum := NewVec3(0, 0, 0).Luminance(); lum != 0 {
		t.Errorf("Expected black luminance 0, got %f", lum)
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected bool
	}{
		{
			name:     "Zero vector",
			vector:   NewVec3(0, 0, 0),
			expected: true,
		},
		{
			name:     "Tiny components",
			vector:   NewVec3(1e-9, -1e-9, 1e-9),
			expected: true,
		},
		{
			name:     "Small but significant",
			vector:   NewVec3(1e-3, 0, 0),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.NearZero(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{
			name:     "At origin",
			t:        0,
			expected: NewVec3(1, 2, 3),
		},
		{
			name:     "Forward along direction",
			t:        2.5,
			expected: NewVec3(1, 2, 0.5),
		},
		{
			name:     "Behind origin",
			t:        -1,
			expected: NewVec3(1, 2, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ray.At(tt.t); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
