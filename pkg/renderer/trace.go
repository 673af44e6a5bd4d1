package renderer

import (
	"math"

	"github.com/bcq028/games101-ray-tracing/pkg/core"
	"github.com/bcq028/games101-ray-tracing/pkg/geometry"
)

// Intersection describes the closest hit found by Trace
type Intersection struct {
	T      float64         // Distance along the ray to the hit point
	Index  int             // Sub-primitive index for composite objects
	UV     core.Vec2       // Local surface parameterization at the hit
	Object geometry.Object // The object that was hit
}

// Trace finds the closest positive-distance intersection of the ray with any
// object, scanning every object exactly once. The comparison is strictly
// less-than, so when two objects report the same distance the first one in
// iteration order wins. ok is false when the ray hits nothing, which is a
// normal result rather than an error.
func Trace(ray core.Ray, objects []geometry.Object) (Intersection, bool) {
	closest := Intersection{T: math.MaxFloat64}
	hitAnything := false

	for _, object := range objects {
		if t, index, uv, ok := object.Intersect(ray); ok && t < closest.T {
			closest = Intersection{T: t, Index: index, UV: uv, Object: object}
			hitAnything = true
		}
	}

	return closest, hitAnything
}
