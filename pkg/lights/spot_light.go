package lights

import (
	"fmt"
	"math"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// SpotLight is a point light whose intensity falls off away from its axis.
// NarrowBeam sharpens the beam: the falloff is max(0, axis·l)^NarrowBeam.
type SpotLight struct {
	PointLight
	Axis       core.Vec3 // Unit direction the spot points to
	NarrowBeam float64
}

// NewSpotLight creates a spot light at position aimed along direction
func NewSpotLight(color, position, direction core.Vec3) (*SpotLight, error) {
	if direction.IsZero() {
		return nil, fmt.Errorf("spot light direction: %w", core.ErrZeroVector)
	}
	return &SpotLight{
		PointLight: *NewPointLight(color, position),
		Axis:       direction.Normalize(),
		NarrowBeam: 1,
	}, nil
}

func (sl *SpotLight) Type() LightType {
	return LightTypeSpot
}

// Intensity applies the beam falloff on top of the point light attenuation
func (sl *SpotLight) Intensity(point core.Vec3) core.Vec3 {
	cosAngle := core.AlignZero(sl.Axis.Dot(sl.Direction(point)))
	if cosAngle <= 0 {
		return core.Black
	}
	falloff := cosAngle
	if sl.NarrowBeam != 1 {
		falloff = math.Pow(cosAngle, sl.NarrowBeam)
	}
	return sl.PointLight.Intensity(point).Multiply(falloff)
}
