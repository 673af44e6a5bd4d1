package geometry

import (
	"github.com/bcq028/games101-ray-tracing/pkg/core"
	"github.com/bcq028/games101-ray-tracing/pkg/material"
)

// Object interface for shapes that rays can intersect
type Object interface {
	// Intersect returns the distance along the ray to the object's closest
	// positive intersection. For composite objects, index identifies the
	// sub-primitive that was hit and uv holds its local parameterization.
	// ok is false when the ray misses the object entirely.
	Intersect(ray core.Ray) (t float64, index int, uv core.Vec2, ok bool)

	// SurfaceProperties returns the world-space normal and the texture (st)
	// coordinates at a hit point. index and uv are the values reported by
	// Intersect for that hit.
	SurfaceProperties(point, dir core.Vec3, index int, uv core.Vec2) (normal core.Vec3, st core.Vec2)

	// Material returns the surface material parameters
	Material() *material.Material
}
