package raster

import (
	"math"

	"github.com/WilliamC07/graphics-final/pkg/core"
	"github.com/WilliamC07/graphics-final/pkg/material"
)

// PointLight illuminates the scene from a single position
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewPointLight creates a point light
func NewPointLight(position, color core.Vec3) PointLight {
	return PointLight{Position: position, Color: color}
}

// DefaultAmbient is the fill light applied when a config leaves the
// ambient term unset.
var DefaultAmbient = core.NewVec3(0.1, 0.1, 0.1)

// Specular exponents for the two surface families the preview
// distinguishes: matte diffuse surfaces and polished ones.
const (
	matteShininess  = 8.0
	glossyShininess = 128.0
)

// Appearance is the Phong recipe for one surface: a base color, a
// specular weight and a specular exponent.
type Appearance struct {
	Diffuse   core.Vec3
	Specular  float64
	Shininess float64
}

// AppearanceFor derives Phong terms from a path-tracing material.
// Lambertian surfaces keep their albedo and stay matte, metals keep
// their albedo and turn glossy, dielectrics show up as near-white
// polished glass. Unknown materials fall back to a neutral matte gray.
func AppearanceFor(m core.Material) Appearance {
	switch mat := m.(type) {
	case *material.Lambertian:
		return Appearance{Diffuse: mat.Albedo, Specular: 0.15, Shininess: matteShininess}
	case *material.Metal:
		return Appearance{Diffuse: mat.Albedo, Specular: 0.9, Shininess: glossyShininess}
	case *material.Dielectric:
		return Appearance{Diffuse: core.NewVec3(0.92, 0.92, 0.95), Specular: 1.0, Shininess: glossyShininess}
	default:
		return Appearance{Diffuse: core.NewVec3(0.7, 0.7, 0.7), Specular: 0.15, Shininess: matteShininess}
	}
}

// Shade evaluates the Phong model at a surface point seen from the
// camera at the origin: ambient plus, per light, a Lambert diffuse term
// and a reflected-ray specular term. Lights behind the surface
// contribute nothing.
func Shade(point, normal core.Vec3, app Appearance, lights []PointLight, ambient core.Vec3) core.Vec3 {
	color := app.Diffuse.MultiplyVec(ambient)
	view := point.Multiply(-1).Normalize()

	for _, light := range lights {
		lightDir := light.Position.Subtract(point).Normalize()

		nDotL := normal.Dot(lightDir)
		if nDotL <= 0 {
			continue
		}

		diffuse := app.Diffuse.MultiplyVec(light.Color).Multiply(nDotL)
		color = color.Add(diffuse)

		// Specular highlight where the mirrored light direction lines
		// up with the view direction
		reflected := material.Reflect(lightDir.Multiply(-1), normal)
		if rDotV := reflected.Dot(view); rDotV > 0 {
			specular := light.Color.Multiply(app.Specular * math.Pow(rDotV, app.Shininess))
			color = color.Add(specular)
		}
	}

	return color
}
