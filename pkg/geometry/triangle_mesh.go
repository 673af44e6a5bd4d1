package geometry

import (
	"math"

	"github.com/bcq028/games101-ray-tracing/pkg/core"
	"github.com/bcq028/games101-ray-tracing/pkg/material"
)

// TriangleMesh represents an indexed collection of triangles with per-vertex
// texture coordinates
type TriangleMesh struct {
	vertices []core.Vec3 // 3D vertex positions
	faces    []int       // Triangle vertex indices, 3 per triangle
	st       []core.Vec2 // Per-vertex texture coordinates

	material *material.Material
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices.
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// st: texture coordinates, one per vertex
// mat: material shared by all triangles
func NewTriangleMesh(vertices []core.Vec3, faces []int, st []core.Vec2, mat *material.Material) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}
	if len(st) != len(vertices) {
		panic("Number of texture coordinates must match number of vertices")
	}
	for _, index := range faces {
		if index < 0 || index >= len(vertices) {
			panic("Face index out of bounds")
		}
	}

	return &TriangleMesh{
		vertices: vertices,
		faces:    faces,
		st:       st,
		material: mat,
	}
}

// TriangleCount returns the number of triangles in this mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.faces) / 3
}

// Intersect tests the ray against every triangle and returns the closest
// positive hit. index identifies the hit triangle and uv holds its
// barycentric coordinates.
func (m *TriangleMesh) Intersect(ray core.Ray) (float64, int, core.Vec2, bool) {
	closestT := math.MaxFloat64
	closestIndex := 0
	closestUV := core.Vec2{}
	hitAnything := false

	for k := 0; k < m.TriangleCount(); k++ {
		v0, v1, v2 := m.triangle(k)
		if t, u, v, ok := rayTriangleIntersect(ray, v0, v1, v2); ok && t < closestT {
			closestT = t
			closestIndex = k
			closestUV = core.NewVec2(u, v)
			hitAnything = true
		}
	}

	return closestT, closestIndex, closestUV, hitAnything
}

// SurfaceProperties returns the triangle's face normal and the texture
// coordinates interpolated from its vertices by the barycentric uv
func (m *TriangleMesh) SurfaceProperties(point, dir core.Vec3, index int, uv core.Vec2) (core.Vec3, core.Vec2) {
	v0, v1, v2 := m.triangle(index)

	e0 := v1.Subtract(v0).Normalize()
	e1 := v2.Subtract(v1).Normalize()
	normal := e0.Cross(e1).Normalize()

	st0 := m.st[m.faces[index*3]]
	st1 := m.st[m.faces[index*3+1]]
	st2 := m.st[m.faces[index*3+2]]
	st := st0.Multiply(1 - uv.X - uv.Y).
		Add(st1.Multiply(uv.X)).
		Add(st2.Multiply(uv.Y))

	return normal, st
}

// Material returns the mesh's material
func (m *TriangleMesh) Material() *material.Material {
	return m.material
}

// triangle returns the vertices of triangle k
func (m *TriangleMesh) triangle(k int) (core.Vec3, core.Vec3, core.Vec3) {
	return m.vertices[m.faces[k*3]], m.vertices[m.faces[k*3+1]], m.vertices[m.faces[k*3+2]]
}

// rayTriangleIntersect tests a ray against a single triangle using the
// Möller-Trumbore algorithm. u and v are the barycentric coordinates of the
// intersection point.
func rayTriangleIntersect(ray core.Ray, v0, v1, v2 core.Vec3) (t, u, v float64, ok bool) {
	const epsilon = 1e-8

	// Calculate two edge vectors
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	// Calculate determinant
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(v0)
	u = f * s.Dot(h)

	// Check if intersection is outside triangle
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)

	// Check if intersection is outside triangle
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	// Only intersections in front of the ray origin count
	t = f * edge2.Dot(q)
	if t <= 0 {
		return 0, 0, 0, false
	}

	return t, u, v, true
}
