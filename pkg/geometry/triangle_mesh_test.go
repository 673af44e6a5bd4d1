package geometry

import (
	"math"
	"testing"

	"github.com/bcq028/games101-ray-tracing/pkg/core"
	"github.com/bcq028/games101-ray-tracing/pkg/material"
)

// newTestTriangle builds a single right triangle in the z=-5 plane
func newTestTriangle() *TriangleMesh {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, -5),
		core.NewVec3(1, 0, -5),
		core.NewVec3(0, 1, -5),
	}
	faces := []int{0, 1, 2}
	st := []core.Vec2{
		core.NewVec2(0, 0),
		core.NewVec2(1, 0),
		core.NewVec2(0, 1),
	}
	return NewTriangleMesh(vertices, faces, st, material.New(material.DiffuseAndGlossy))
}

// newTestFloor builds the two-triangle horizontal quad at y=-3
func newTestFloor() *TriangleMesh {
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
	return NewTriangleMesh(vertices, faces, st, material.New(material.DiffuseAndGlossy))
}

func TestTriangleMesh_Intersect_BarycentricHit(t *testing.T) {
	mesh := newTestTriangle()

	target := core.NewVec3(0.25, 0.25, -5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), target.Normalize())

	dist, index, uv, ok := mesh.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if index != 0 {
		t.Errorf("Expected triangle index 0, got %d", index)
	}

	const tolerance = 1e-9
	if math.Abs(uv.X-0.25) > tolerance || math.Abs(uv.Y-0.25) > tolerance {
		t.Errorf("Expected barycentric uv (0.25, 0.25), got %v", uv)
	}
	if ray.At(dist).Subtract(target).Length() > tolerance {
		t.Errorf("Expected hit point %v, got %v", target, ray.At(dist))
	}
}

func TestTriangleMesh_Intersect_Misses(t *testing.T) {
	mesh := newTestTriangle()

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
	}{
		{
			name:         "outside the triangle (u+v > 1)",
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0.9, 0.9, -5).Normalize(),
		},
		{
			name:         "triangle behind the ray origin",
			rayOrigin:    core.NewVec3(0.25, 0.25, 0),
			rayDirection: core.NewVec3(0, 0, 1),
		},
		{
			name:         "ray parallel to the triangle plane",
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			if dist, _, _, ok := mesh.Intersect(ray); ok {
				t.Errorf("Expected miss, but got hit at t=%f", dist)
			}
		})
	}
}

func TestTriangleMesh_Intersect_PicksTriangleBySubIndex(t *testing.T) {
	floor := newTestFloor()

	tests := []struct {
		name          string
		above         core.Vec3 // Point the ray drops down from
		expectedIndex int
	}{
		{"first triangle of the quad", core.NewVec3(-1, 0, -10), 0},
		{"second triangle of the quad", core.NewVec3(2, 0, -14), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.above, core.NewVec3(0, -1, 0))
			dist, index, _, ok := floor.Intersect(ray)
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}
			if index != tt.expectedIndex {
				t.Errorf("Expected triangle index %d, got %d", tt.expectedIndex, index)
			}
			if math.Abs(dist-3) > 1e-9 {
				t.Errorf("Expected t=3, got t=%f", dist)
			}
		})
	}
}

func TestTriangleMesh_SurfaceProperties(t *testing.T) {
	floor := newTestFloor()

	ray := core.NewRay(core.NewVec3(-1, 0, -10), core.NewVec3(0, -1, 0))
	dist, index, uv, ok := floor.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	normal, st := floor.SurfaceProperties(ray.At(dist), ray.Direction, index, uv)

	const tolerance = 1e-9
	if normal.Subtract(core.NewVec3(0, 1, 0)).Length() > tolerance {
		t.Errorf("Expected upward normal (0,1,0), got %v", normal)
	}

	// The quad's st coordinates span it once: x=-1 maps to s=0.4, z=-10 to t=0.4
	if math.Abs(st.X-0.4) > tolerance || math.Abs(st.Y-0.4) > tolerance {
		t.Errorf("Expected st (0.4, 0.4), got %v", st)
	}
}

func TestTriangleMesh_TriangleCount(t *testing.T) {
	if got := newTestTriangle().TriangleCount(); got != 1 {
		t.Errorf("Expected 1 triangle, got %d", got)
	}
	if got := newTestFloor().TriangleCount(); got != 2 {
		t.Errorf("Expected 2 triangles, got %d", got)
	}
}
