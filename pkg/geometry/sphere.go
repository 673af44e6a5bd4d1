package geometry

import (
	"math"

	"github.com/bcq028/games101-ray-tracing/pkg/core"
	"github.com/bcq028/games101-ray-tracing/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64

	material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		material: mat,
	}
}

// Intersect tests if a ray intersects with the sphere and returns the
// closest positive intersection distance
func (s *Sphere) Intersect(ray core.Ray) (float64, int, core.Vec2, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	// Discriminant
	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return 0, 0, core.Vec2{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first; a hit is only valid at a
	// strictly positive distance
	root := (-halfB - sqrtD) / a
	if root <= 0 {
		root = (-halfB + sqrtD) / a
		if root <= 0 {
			return 0, 0, core.Vec2{}, false
		}
	}

	return root, 0, core.Vec2{}, true
}

// SurfaceProperties returns the outward normal and spherical st coordinates
// at a point on the sphere
func (s *Sphere) SurfaceProperties(point, dir core.Vec3, index int, uv core.Vec2) (core.Vec3, core.Vec2) {
	normal := point.Subtract(s.Center).Normalize()

	// Spherical mapping so image textures wrap once around the sphere
	st := core.NewVec2(
		0.5+math.Atan2(normal.Z, normal.X)/(2*math.Pi),
		0.5-math.Asin(core.Clamp(-1, 1, normal.Y))/math.Pi,
	)

	return normal, st
}

// Material returns the sphere's material
func (s *Sphere) Material() *material.Material {
	return s.material
}
