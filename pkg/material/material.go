package material

import (
	"github.com/bcq028/games101-ray-tracing/pkg/core"
)

// Type classifies how a surface responds to light
type Type int

const (
	// DiffuseAndGlossy surfaces are shaded locally with the Phong model
	DiffuseAndGlossy Type = iota
	// Reflection surfaces spawn a single mirror ray scaled by the Fresnel term
	Reflection
	// ReflectionAndRefraction surfaces spawn both a reflection and a
	// refraction ray, blended by the Fresnel term
	ReflectionAndRefraction
)

// Material holds the surface parameters the shader dispatches on
type Material struct {
	Type             Type
	Diffuse          Texture // Diffuse color lookup, evaluated at the surface st coordinates
	Kd               float64 // Diffuse coefficient
	Ks               float64 // Specular coefficient
	SpecularExponent float64 // Phong specular exponent
	RefractiveIndex  float64 // Index of refraction, only meaningful for refractive surfaces
}

// New creates a material of the given type with default parameters
func New(materialType Type) *Material {
	return &Material{
		Type:             materialType,
		Diffuse:          &SolidColor{Color: core.NewVec3(0.2, 0.2, 0.2)},
		Kd:               0.8,
		Ks:               0.2,
		SpecularExponent: 25,
		RefractiveIndex:  1.3,
	}
}

// NewDiffuse creates a Phong-shaded material with the given diffuse texture
func NewDiffuse(diffuse Texture) *Material {
	m := New(DiffuseAndGlossy)
	m.Diffuse = diffuse
	return m
}

// NewMirror creates a purely reflective material
func NewMirror() *Material {
	return New(Reflection)
}

// NewGlass creates a reflective and refractive material with the given
// index of refraction
func NewGlass(refractiveIndex float64) *Material {
	m := New(ReflectionAndRefraction)
	m.RefractiveIndex = refractiveIndex
	return m
}

// EvalDiffuseColor returns the diffuse color at the given surface coordinates
func (m *Material) EvalDiffuseColor(st core.Vec2) core.Vec3 {
	return m.Diffuse.Evaluate(st)
}
