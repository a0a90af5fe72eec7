package lights

import "github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
)

// LightSource is a light that contributes to the local (Phong) shading of a point
type LightSource interface {
	Type() LightType

	// Intensity returns the light's color arriving at the point, after attenuation
	Intensity(point core.Vec3) core.Vec3

	// Direction returns the unit vector FROM the light TO the point
	Direction(point core.Vec3) core.Vec3

	// Distance returns how far the light is from the point.
	// Lights at infinity return +Inf.
	Distance(point core.Vec3) float64
}

// Attenuation holds the constant, linear and quadratic falloff factors
// of a positional light: I / (Kc + Kl·d + Kq·d²)
type Attenuation struct {
	Kc, Kl, Kq float64
}

// DefaultAttenuation does not fall off with distance
func DefaultAttenuation() Attenuation {
	return Attenuation{Kc: 1}
}

// Factor returns the denominator of the falloff at distance d
func (a Attenuation) Factor(d float64) float64 {
	return a.Kc + a.Kl*d + a.Kq*d*d
}
