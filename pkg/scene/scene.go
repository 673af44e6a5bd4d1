package scene

import (
	"github.com/bcq028/games101-ray-tracing/pkg/core"
	"github.com/bcq028/games101-ray-tracing/pkg/geometry"
	"github.com/bcq028/games101-ray-tracing/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is read-only for
// the duration of a render pass.
type Scene struct {
	Width           int       // Image width in pixels
	Height          int       // Image height in pixels
	Fov             float64   // Vertical field of view in degrees
	MaxDepth        int       // Maximum ray bounce depth
	Epsilon         float64   // Offset applied to secondary ray origins to avoid self-intersection
	BackgroundColor core.Vec3 // Color returned when a ray misses every object

	Objects []geometry.Object
	Lights  []lights.PointLight
}

// NewScene creates an empty scene with default rendering parameters
func NewScene(width, height int) *Scene {
	return &Scene{
		Width:           width,
		Height:          height,
		Fov:             90,
		MaxDepth:        5,
		Epsilon:         0.00001,
		BackgroundColor: core.NewVec3(0.235294, 0.67451, 0.843137),
	}
}

// Add appends an object to the scene
func (s *Scene) Add(object geometry.Object) {
	s.Objects = append(s.Objects, object)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}
