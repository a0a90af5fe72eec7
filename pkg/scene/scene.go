package scene

import (
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/geometry"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/lights"
)

// Scene contains all the elements needed for rendering.
// It is built once and then only read while rendering.
type Scene struct {
	Name       string
	Geometries *geometry.Geometries // Objects in the scene
	Lights     []lights.LightSource // Lights in the scene
	Ambient    lights.AmbientLight  // Fill light added to every hit
	Background core.Vec3            // Color of rays that hit nothing
	View       View                 // Recommended camera placement
	Sampling   SamplingConfig       // Recommended image and sampling settings
	Grid       GridOverlay          // Optional grid drawn over the image
}

// View describes where a camera should stand to frame the scene
type View struct {
	Position          core.Vec3
	To                core.Vec3
	Up                core.Vec3
	ViewPlaneWidth    float64
	ViewPlaneHeight   float64
	ViewPlaneDistance float64
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width            int  // Image width
	Height           int  // Image height
	SamplesPerPixel  int  // Rays per pixel, a perfect square
	AdaptiveSampling bool // Subdivide only where corner samples disagree
}

// GridOverlay draws lines every Interval pixels. An Interval of 0 disables it.
type GridOverlay struct {
	Interval int
	Color    core.Vec3
}

// New creates an empty scene with a black background and no ambient light
func New(name string) *Scene {
	return &Scene{
		Name:       name,
		Geometries: geometry.NewGeometries(),
		Ambient:    lights.AmbientNone,
		Background: core.Black,
		View: View{
			To: core.NewVec3(0, 0, -1),
			Up: core.AxisY,
		},
		Sampling: SamplingConfig{Width: 500, Height: 500, SamplesPerPixel: 1},
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Intersectable) *Scene {
	s.Geometries.Add(shapes...)
	return s
}

// AddLights appends light sources to the scene
func (s *Scene) AddLights(sources ...lights.LightSource) *Scene {
	s.Lights = append(s.Lights, sources...)
	return s
}

// SetAmbientLight replaces the ambient light
func (s *Scene) SetAmbientLight(ambient lights.AmbientLight) *Scene {
	s.Ambient = ambient
	return s
}

// SetBackground replaces the background color
func (s *Scene) SetBackground(color core.Vec3) *Scene {
	s.Background = color
	return s
}

// GetPrimitiveCount returns the number of top-level shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.Geometries.Len()
}
