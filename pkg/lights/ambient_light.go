package lights

import "github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"

// AmbientLight is a uniform fill light added to every visible point
type AmbientLight struct {
	intensity core.Vec3
}

// AmbientNone contributes nothing
var AmbientNone = AmbientLight{}

// NewAmbientLight scales the color by a single ambient coefficient
func NewAmbientLight(color core.Vec3, ka float64) AmbientLight {
	return AmbientLight{intensity: color.Multiply(ka)}
}

// NewAmbientLightVec scales each channel of the color by its own coefficient
func NewAmbientLightVec(color, ka core.Vec3) AmbientLight {
	return AmbientLight{intensity: color.MultiplyVec(ka)}
}

// Intensity returns the ambient color
func (a AmbientLight) Intensity() core.Vec3 {
	return a.intensity
}
