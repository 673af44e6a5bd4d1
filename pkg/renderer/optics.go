package renderer

import (
	"math"

	"github.com/bcq028/games101-ray-tracing/pkg/core"
)

// Reflect mirrors the incoming direction i about the surface normal n:
// r = i - 2*dot(i,n)*n. The formula is valid whichever side of the surface
// n points to.
func Reflect(i, n core.Vec3) core.Vec3 {
	return i.Subtract(n.Multiply(2 * i.Dot(n)))
}

// Refract computes the transmitted direction through an interface with the
// given index of refraction using Snell's law. The cosine of the incidence
// angle is clamped to [-1,1] to guard against floating-point drift. ok is
// false when the incidence angle exceeds the critical angle (total internal
// reflection), in which case no valid refraction direction exists and the
// returned vector must not be used.
func Refract(i, n core.Vec3, ior float64) (core.Vec3, bool) {
	cosi := math.Abs(core.Clamp(-1, 1, i.Dot(n)))
	eta := 1 / ior

	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Vec3{}, false
	}
	cost := math.Sqrt(k)

	return i.Multiply(eta).Add(n.Multiply(eta*cosi - cost)), true
}

// Fresnel returns the fraction of light reflected at the interface using
// Schlick's approximation. The result is in [0,1]; the complementary
// fraction 1-kr is transmitted.
func Fresnel(i, n core.Vec3, ior float64) float64 {
	cosi := math.Abs(core.Clamp(-1, 1, i.Dot(n)))

	r0 := (1 - ior) / (1 + ior)
	r0 = r0 * r0

	return r0 + (1-r0)*math.Pow(1-cosi, 5)
}
