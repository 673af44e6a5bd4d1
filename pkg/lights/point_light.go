package lights

import "github.com/bcq028/games101-ray-tracing/pkg/core"

// PointLight is an isotropic emitter at a single position
type PointLight struct {
	Position  core.Vec3 // World-space location of the light
	Intensity core.Vec3 // Emitted radiance, one value per color channel
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
