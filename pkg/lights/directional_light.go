package lights

import (
	"fmt"
	"math"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// DirectionalLight is a light at infinity shining along a fixed direction
type DirectionalLight struct {
	color     core.Vec3
	direction core.Vec3
}

// NewDirectionalLight creates a directional light shining along direction
func NewDirectionalLight(color, direction core.Vec3) (*DirectionalLight, error) {
	if direction.IsZero() {
		return nil, fmt.Errorf("directional light direction: %w", core.ErrZeroVector)
	}
	return &DirectionalLight{color: color, direction: direction.Normalize()}, nil
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Intensity does not depend on the point
func (dl *DirectionalLight) Intensity(core.Vec3) core.Vec3 {
	return dl.color
}

// Direction is the same everywhere
func (dl *DirectionalLight) Direction(core.Vec3) core.Vec3 {
	return dl.direction
}

// Distance is infinite, so every occluder along the shadow ray counts
func (dl *DirectionalLight) Distance(core.Vec3) float64 {
	return math.Inf(1)
}
