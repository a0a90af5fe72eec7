package scene

import (
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/geometry"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/lights"
)

// Named colors in 0-255 radiance units
var (
	colorRed    = core.NewVec3(255, 0, 0)
	colorBlue   = core.NewVec3(0, 0, 255)
	colorWhite  = core.NewVec3(255, 255, 255)
	colorYellow = core.NewVec3(255, 255, 0)
	colorOrange = core.NewVec3(255, 200, 0)
	colorPink   = core.NewVec3(255, 175, 175)
)

type surfaced interface {
	geometry.Geometry
	SetEmission(core.Vec3)
	SetMaterial(core.Material)
}

// builder fills a scene and keeps the first construction error,
// so scene definitions read as a flat list of shapes.
type builder struct {
	scene *Scene
	err   error
}

func newBuilder(name string) *builder {
	return &builder{scene: New(name)}
}

// shape is returned by add to style the shape just added
type shape struct {
	s surfaced
}

func (b *builder) add(s surfaced, err error) shape {
	if err != nil {
		b.fail(err)
		return shape{}
	}
	b.scene.Add(s)
	return shape{s: s}
}

func (sh shape) emission(color core.Vec3) shape {
	if sh.s != nil {
		sh.s.SetEmission(color)
	}
	return sh
}

func (sh shape) material(m core.Material) shape {
	if sh.s != nil {
		sh.s.SetMaterial(m)
	}
	return sh
}

func (b *builder) directional(color, direction core.Vec3) {
	light, err := lights.NewDirectionalLight(color, direction)
	if err != nil {
		b.fail(err)
		return
	}
	b.scene.AddLights(light)
}

func (b *builder) point(color, position core.Vec3, kl, kq float64) {
	light := lights.NewPointLight(color, position)
	light.Kl, light.Kq = kl, kq
	b.scene.AddLights(light)
}

func (b *builder) spot(color, position, direction core.Vec3, kl, kq float64) {
	light, err := lights.NewSpotLight(color, position, direction)
	if err != nil {
		b.fail(err)
		return
	}
	light.Kl, light.Kq = kl, kq
	b.scene.AddLights(light)
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *builder) build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.scene, nil
}

// material is a shorthand for the Phong triple most scenes use
func material(kd, ks float64, shininess int) core.Material {
	return core.NewMaterial().WithKd(kd).WithKs(ks).WithShininess(shininess)
}
