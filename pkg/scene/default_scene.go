package scene

import (
	"github.com/bcq028/games101-ray-tracing/pkg/core"
	"github.com/bcq028/games101-ray-tracing/pkg/geometry"
	"github.com/bcq028/games101-ray-tracing/pkg/lights"
	"github.com/bcq028/games101-ray-tracing/pkg/material"
)

// NewDefaultScene creates the classic two-spheres-over-a-checkerboard scene:
// a glass sphere and a diffuse sphere above a two-triangle floor mesh, lit by
// two point lights. floor overrides the floor texture; nil keeps the
// checkerboard.
func NewDefaultScene(floor material.Texture) *Scene {
	s := NewScene(1280, 960)

	diffuseMat := material.NewDiffuse(material.NewSolidColor(core.NewVec3(0.6, 0.7, 0.8)))
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0, -12), 2, diffuseMat))

	s.Add(geometry.NewSphere(core.NewVec3(0.5, -0.5, -8), 1.5, material.NewGlass(1.5)))

	if floor == nil {
		floor = material.NewCheckerTexture(5,
			core.NewVec3(0.815, 0.235, 0.031),
			core.NewVec3(0.937, 0.937, 0.231))
	}
	s.Add(NewFloorQuad(floor))

	s.AddLight(lights.NewPointLight(core.NewVec3(-20, 70, 20), core.NewVec3(0.5, 0.5, 0.5)))
	s.AddLight(lights.NewPointLight(core.NewVec3(30, 50, -12), core.NewVec3(0.5, 0.5, 0.5)))

	return s
}

// NewFloorQuad creates the ground plane used by the default scene: a
// two-triangle quad spanning x in [-5,5], z in [-16,-6] at y=-3, with st
// coordinates covering the quad once
func NewFloorQuad(texture material.Texture) *geometry.TriangleMesh {
	vertices := []core.Vec3{
		core.NewVec3(-5, -3, -6),
		core.NewVec3(5, -3, -6),
		core.NewVec3(5, -3, -16),
		core.NewVec3(-5, -3, -16),
	}
	faces := []int{0, 1, 3, 1, 2, 3}
	st := []core.Vec2{
		core.NewVec2(0, 0),
		core.NewVec2(1, 0),
		core.NewVec2(1, 1),
		core.NewVec2(0, 1),
	}

	return geometry.NewTriangleMesh(vertices, faces, st, material.NewDiffuse(texture))
}

// NewMirrorScene creates a scene with a single fully reflective sphere in
// front of the camera and nothing else, so every reflected ray escapes to
// the background
func NewMirrorScene() *Scene {
	s := NewScene(800, 600)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -10), 3, material.NewMirror()))
	return s
}
