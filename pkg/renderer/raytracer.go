package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/bcq028/games101-ray-tracing/pkg/core"
	"github.com/bcq028/games101-ray-tracing/pkg/material"
	"github.com/bcq028/games101-ray-tracing/pkg/scene"
)

// offsetOrigin nudges a secondary ray origin off the surface along the
// normal, on the side the ray travels toward, so the ray cannot immediately
// re-intersect the surface it starts on
func offsetOrigin(point, dir, normal core.Vec3, epsilon float64) core.Vec3 {
	if dir.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(epsilon))
	}
	return point.Add(normal.Multiply(epsilon))
}

// CastRay returns the color seen along a ray using the recursive Whitted
// illumination model: reflective and refractive surfaces spawn secondary
// rays blended by the Fresnel term, everything else is shaded locally with
// the Phong model and shadow rays. The explicit depth counter is the only
// termination guarantee; once it exceeds the scene's maximum the ray
// contributes black.
func CastRay(origin, dir core.Vec3, sc *scene.Scene, depth int) core.Vec3 {
	if depth > sc.MaxDepth {
		return core.Vec3{}
	}

	hit, ok := Trace(core.NewRay(origin, dir), sc.Objects)
	if !ok {
		return sc.BackgroundColor
	}

	hitPoint := origin.Add(dir.Multiply(hit.T))
	mat := hit.Object.Material()
	normal, st := hit.Object.SurfaceProperties(hitPoint, dir, hit.Index, hit.UV)

	switch mat.Type {
	case material.ReflectionAndRefraction:
		reflectionDir := Reflect(dir, normal).Normalize()
		reflectionOrig := offsetOrigin(hitPoint, reflectionDir, normal, sc.Epsilon)
		reflectionColor := CastRay(reflectionOrig, reflectionDir, sc, depth+1)

		// Under total internal reflection nothing is transmitted: the
		// refraction branch contributes black and the invalid direction is
		// never normalized or traced.
		refractionColor := core.Vec3{}
		if refractionDir, refracted := Refract(dir, normal, mat.RefractiveIndex); refracted {
			refractionDir = refractionDir.Normalize()
			refractionOrig := offsetOrigin(hitPoint, refractionDir, normal, sc.Epsilon)
			refractionColor = CastRay(refractionOrig, refractionDir, sc, depth+1)
		}

		kr := Fresnel(dir, normal, mat.RefractiveIndex)
		return reflectionColor.Multiply(kr).Add(refractionColor.Multiply(1 - kr))

	case material.Reflection:
		kr := Fresnel(dir, normal, mat.RefractiveIndex)
		reflectionDir := Reflect(dir, normal).Normalize()
		reflectionOrig := offsetOrigin(hitPoint, reflectionDir, normal, sc.Epsilon)
		return CastRay(reflectionOrig, reflectionDir, sc, depth+1).Multiply(kr)

	default:
		// Phong local shading: the diffuse term is shadow-tested per light,
		// the specular term accumulates regardless of shadow.
		lightAmt := core.Vec3{}
		specularColor := core.Vec3{}

		// Shadow rays start just off the surface on the side the viewer
		// sees, hence the negated view direction.
		shadowOrig := offsetOrigin(hitPoint, dir.Negate(), normal, sc.Epsilon)

		for _, light := range sc.Lights {
			lightDir := light.Position.Subtract(hitPoint)
			// Squared distance between the hit point and the light
			lightDistance2 := lightDir.Dot(lightDir)
			lightDir = lightDir.Normalize()
			ldotN := math.Max(0, lightDir.Dot(normal))

			// The point is in shadow only if the occluder lies strictly
			// between the point and the light, not beyond it
			shadowHit, occluded := Trace(core.NewRay(shadowOrig, lightDir), sc.Objects)
			inShadow := occluded && shadowHit.T*shadowHit.T < lightDistance2
			if !inShadow {
				lightAmt = lightAmt.Add(light.Intensity.Multiply(ldotN))
			}

			reflectionDir := Reflect(lightDir.Negate(), normal)
			specular := math.Pow(math.Max(0, -reflectionDir.Dot(dir)), mat.SpecularExponent)
			specularColor = specularColor.Add(light.Intensity.Multiply(specular))
		}

		return lightAmt.MultiplyVec(mat.EvalDiffuseColor(st)).Multiply(mat.Kd).
			Add(specularColor.Multiply(mat.Ks))
	}
}

// Renderer drives one full render pass over the scene's pixel grid
type Renderer struct {
	scene  *scene.Scene
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(sc *scene.Scene) *Renderer {
	return &Renderer{scene: sc}
}

// SetLogger enables render-progress reporting. A nil logger silences it.
func (r *Renderer) SetLogger(logger core.Logger) {
	r.logger = logger
}

// Render computes the linear color of every pixel and returns the
// framebuffer in row-major order, with row 0 as the top scanline. The camera
// sits at the origin looking down -Z; the y sign flip below maps increasing
// rows to decreasing world y so that +Y points up in the output.
func (r *Renderer) Render() []core.Vec3 {
	sc := r.scene
	framebuffer := make([]core.Vec3, sc.Width*sc.Height)

	scale := math.Tan(core.DegreesToRadians(sc.Fov) / 2)
	aspectRatio := float64(sc.Width) / float64(sc.Height)
	eye := core.NewVec3(0, 0, 0)

	m := 0
	for j := 0; j < sc.Height; j++ {
		for i := 0; i < sc.Width; i++ {
			// Pixel center to NDC in [-1,1], then onto the image plane at z=-1
			ndcX := (float64(i)+0.5)*2/float64(sc.Width) - 1
			ndcY := (float64(j)+0.5)*2/float64(sc.Height) - 1

			x := ndcX * scale * aspectRatio
			y := -ndcY * scale

			dir := core.NewVec3(x, y, -1).Normalize()
			framebuffer[m] = CastRay(eye, dir, sc, 0)
			m++
		}
		r.logProgress(j + 1)
	}

	return framebuffer
}

// RenderImage renders the scene and converts the framebuffer to an RGBA
// image, clamping each channel to [0,1] and scaling to the 8-bit range
func (r *Renderer) RenderImage() *image.RGBA {
	framebuffer := r.Render()
	return ToImage(framebuffer, r.scene.Width, r.scene.Height)
}

// ToImage converts a row-major linear framebuffer to an RGBA image
func ToImage(framebuffer []core.Vec3, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			c := framebuffer[j*width+i].Clamp(0, 1)
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}

// logProgress reports completed rows through the configured logger, once per
// tenth of the image
func (r *Renderer) logProgress(rowsDone int) {
	if r.logger == nil {
		return
	}
	step := r.scene.Height / 10
	if step == 0 {
		step = 1
	}
	if rowsDone%step == 0 || rowsDone == r.scene.Height {
		r.logger.Printf("rendered %d/%d rows (%.0f%%)",
			rowsDone, r.scene.Height, 100*float64(rowsDone)/float64(r.scene.Height))
	}
}
