package material

import (
	"math"

	"github.com/bcq028/games101-ray-tracing/pkg/core"
)

// Texture provides a diffuse color for a point on a surface
type Texture interface {
	// Evaluate samples the texture at the given st coordinates
	Evaluate(st core.Vec2) core.Vec3
}

// SolidColor is a texture with the same color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a uniform texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the uniform color regardless of st
func (s *SolidColor) Evaluate(st core.Vec2) core.Vec3 {
	return s.Color
}

// CheckerTexture is an analytic checkerboard pattern
type CheckerTexture struct {
	Scale          float64   // Number of checker cells per unit of st space
	Color1, Color2 core.Vec3 // Alternating cell colors
}

// NewCheckerTexture creates a checkerboard texture
func NewCheckerTexture(scale float64, color1, color2 core.Vec3) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Color1: color1, Color2: color2}
}

// Evaluate returns Color1 or Color2 depending on which checker cell contains st
func (c *CheckerTexture) Evaluate(st core.Vec2) core.Vec3 {
	oddX := math.Mod(st.X*c.Scale, 1) > 0.5
	oddY := math.Mod(st.Y*c.Scale, 1) > 0.5
	if oddX != oddY {
		return c.Color2
	}
	return c.Color1
}
