package renderer

import (
	"math"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/geometry"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/lights"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/scene"
)

// Recursion bounds for global effects
const (
	// MaxCalcColorLevel is the deepest chain of reflected/refracted rays followed
	MaxCalcColorLevel = 10

	// MinCalcColorK is the accumulated attenuation below which a ray is not worth following
	MinCalcColorK = 0.001
)

// SamplingConfig controls how a beam of rays is reduced to one pixel color
type SamplingConfig struct {
	AdaptiveSampling    bool    // Subdivide the beam only where corner colors differ
	AdaptiveMaxLevel    int     // Subdivision depth; at level 1 every ray is traced
	SimilarityThreshold float64 // Largest per-channel difference still considered similar
}

// DefaultSimilarityThreshold is one 8-bit color step in radiance units
const DefaultSimilarityThreshold = 1.0

// DefaultSamplingConfig returns uniform averaging with adaptive settings ready to enable
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		AdaptiveSampling:    false,
		AdaptiveMaxLevel:    4,
		SimilarityThreshold: DefaultSimilarityThreshold,
	}
}

// RayTracer shades rays against a scene with the recursive Phong model.
// It only reads the scene, so one RayTracer can serve many goroutines.
type RayTracer struct {
	scene  *scene.Scene
	config SamplingConfig
}

// NewRayTracer creates a new ray tracer for the scene
func NewRayTracer(s *scene.Scene) *RayTracer {
	return &RayTracer{
		scene:  s,
		config: DefaultSamplingConfig(),
	}
}

// SetSamplingConfig replaces the sampling configuration
func (rt *RayTracer) SetSamplingConfig(config SamplingConfig) {
	if config.AdaptiveMaxLevel < 1 {
		config.AdaptiveMaxLevel = 1
	}
	rt.config = config
}

// GetSamplingConfig returns the current sampling configuration
func (rt *RayTracer) GetSamplingConfig() SamplingConfig {
	return rt.config
}

// TraceRay returns the color seen along the ray
func (rt *RayTracer) TraceRay(ray core.Ray) core.Vec3 {
	hit, ok := rt.findClosestIntersection(ray)
	if !ok {
		return rt.scene.Background
	}
	return rt.scene.Ambient.Intensity().Add(rt.calcColor(hit, ray, MaxCalcColorLevel, core.Ones))
}

// findClosestIntersection returns the nearest hit of the ray with no distance bound
func (rt *RayTracer) findClosestIntersection(ray core.Ray) (geometry.GeoPoint, bool) {
	return geometry.Closest(ray, rt.scene.Geometries.Intersect(ray, math.Inf(1)))
}

// calcColor is the emission plus local lighting, plus global effects until level 1
func (rt *RayTracer) calcColor(gp geometry.GeoPoint, ray core.Ray, level int, k core.Vec3) core.Vec3 {
	n := gp.Geometry.NormalAt(gp.Point)
	v := ray.Direction
	nv := core.AlignZero(n.Dot(v))
	if nv == 0 {
		return core.Black
	}

	color := rt.calcLocalEffects(gp, v, n, nv, k).Add(gp.Geometry.Emission())
	if level == 1 {
		return color
	}
	return color.Add(rt.calcGlobalEffects(gp, v, n, nv, level, k))
}

// calcGlobalEffects follows the reflected and refracted rays
func (rt *RayTracer) calcGlobalEffects(gp geometry.GeoPoint, v, n core.Vec3, nv float64, level int, k core.Vec3) core.Vec3 {
	material := gp.Geometry.Material()
	color := core.Black

	// r = v - 2(v·n)n
	reflected := core.NewOffsetRay(gp.Point, v.Subtract(n.Multiply(2*nv)), n)
	color = color.Add(rt.calcGlobalEffect(reflected, level, k, material.Kr))

	// Refraction keeps the incoming direction
	refracted := core.NewOffsetRay(gp.Point, v, n)
	color = color.Add(rt.calcGlobalEffect(refracted, level, k, material.Kt))

	return color
}

// calcGlobalEffect traces one secondary ray scaled by its coefficient kx
func (rt *RayTracer) calcGlobalEffect(ray core.Ray, level int, k, kx core.Vec3) core.Vec3 {
	kkx := k.MultiplyVec(kx)
	if kkx.LowerThan(MinCalcColorK) {
		return core.Black
	}

	hit, ok := rt.findClosestIntersection(ray)
	if !ok {
		return rt.scene.Background.MultiplyVec(kx)
	}
	if core.IsZero(hit.Geometry.NormalAt(hit.Point).Dot(ray.Direction)) {
		return core.Black
	}
	return rt.calcColor(hit, ray, level-1, kkx).MultiplyVec(kx)
}

// calcLocalEffects sums the diffuse and specular Phong terms of every light that
// reaches the point from the viewer's side of the surface
func (rt *RayTracer) calcLocalEffects(gp geometry.GeoPoint, v, n core.Vec3, nv float64, k core.Vec3) core.Vec3 {
	material := gp.Geometry.Material()
	color := core.Black

	for _, light := range rt.scene.Lights {
		l := light.Direction(gp.Point)
		nl := core.AlignZero(n.Dot(l))
		if nl*nv <= 0 {
			continue
		}

		ktr := rt.transparency(gp, light, l, n)
		if ktr.MultiplyVec(k).LowerThan(MinCalcColorK) {
			continue
		}

		intensity := light.Intensity(gp.Point).MultiplyVec(ktr)
		color = color.
			Add(calcDiffuse(material.Kd, nl, intensity)).
			Add(calcSpecular(material.Ks, l, n, nl, v, material.Shininess, intensity))
	}
	return color
}

// transparency multiplies the kT of every shape between the point and the light
func (rt *RayTracer) transparency(gp geometry.GeoPoint, light lights.LightSource, l, n core.Vec3) core.Vec3 {
	shadowRay := core.NewOffsetRay(gp.Point, l.Negate(), n)
	occluders := rt.scene.Geometries.Intersect(shadowRay, light.Distance(gp.Point))

	ktr := core.Ones
	for _, occluder := range occluders {
		ktr = ktr.MultiplyVec(occluder.Geometry.Material().Kt)
		if ktr.LowerThan(MinCalcColorK) {
			return core.Black
		}
	}
	return ktr
}

// calcDiffuse returns kd·|n·l|·I
func calcDiffuse(kd core.Vec3, nl float64, intensity core.Vec3) core.Vec3 {
	return intensity.MultiplyVec(kd.Multiply(math.Abs(nl)))
}

// calcSpecular returns ks·max(0, -r·v)^shininess·I with r = l - 2(n·l)n
func calcSpecular(ks, l, n core.Vec3, nl float64, v core.Vec3, shininess int, intensity core.Vec3) core.Vec3 {
	r := l.Subtract(n.Multiply(2 * nl))
	minusVR := -core.AlignZero(r.Dot(v))
	if minusVR <= 0 {
		return core.Black
	}
	return intensity.MultiplyVec(ks.Multiply(math.Pow(minusVR, float64(shininess))))
}
