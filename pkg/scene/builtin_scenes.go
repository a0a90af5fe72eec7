package scene

import (
	"math"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/geometry"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/lights"
)

// NewBasicScene creates a sphere surrounded by three triangles, lit only by
// ambient light, with a yellow grid over the image
func NewBasicScene() (*Scene, error) {
	b := newBuilder("Basic")

	b.add(geometry.NewSphere(core.NewVec3(0, 0, -100), 50))
	b.add(geometry.NewTriangle(core.NewVec3(-100, 0, -100), core.NewVec3(0, 100, -100), core.NewVec3(-100, 100, -100)))
	b.add(geometry.NewTriangle(core.NewVec3(-100, 0, -100), core.NewVec3(0, -100, -100), core.NewVec3(-100, -100, -100)))
	b.add(geometry.NewTriangle(core.NewVec3(100, 0, -100), core.NewVec3(0, -100, -100), core.NewVec3(100, -100, -100)))

	b.scene.SetAmbientLight(lights.NewAmbientLight(core.NewVec3(255, 191, 191), 1)).
		SetBackground(core.NewVec3(75, 127, 90))

	b.scene.View = View{
		Position:          core.Zero,
		To:                core.NewVec3(0, 0, -1),
		Up:                core.AxisY,
		ViewPlaneWidth:    500,
		ViewPlaneHeight:   500,
		ViewPlaneDistance: 100,
	}
	b.scene.Sampling = SamplingConfig{Width: 1000, Height: 1000, SamplesPerPixel: 1}
	b.scene.Grid = GridOverlay{Interval: 100, Color: colorYellow}

	return b.build()
}

// NewTwoSpheresScene creates a transparent sphere around a smaller opaque one, lit by a spot light
func NewTwoSpheresScene() (*Scene, error) {
	b := newBuilder("Two Spheres")

	b.add(geometry.NewSphere(core.NewVec3(0, 0, -50), 200)).
		emission(colorBlue).
		material(material(0.4, 0.3, 100).WithKt(0.3))
	b.add(geometry.NewSphere(core.NewVec3(0, 0, -50), 100)).
		emission(colorRed).
		material(material(0.5, 0.5, 100))

	b.spot(core.NewVec3(1000, 600, 0), core.NewVec3(-100, -100, 500), core.NewVec3(-1, -1, -2), 0.0004, 0.0000006)

	b.scene.View = frontView(1000, 150)
	b.scene.Sampling = SamplingConfig{Width: 500, Height: 500, SamplesPerPixel: 1}

	return b.build()
}

// NewMirrorsScene creates two nested spheres reflected in two large mirror triangles
func NewMirrorsScene() (*Scene, error) {
	b := newBuilder("Spheres On Mirrors")

	b.add(geometry.NewSphere(core.NewVec3(-950, -900, -1000), 400)).
		emission(core.NewVec3(0, 50, 100)).
		material(material(0.25, 0.25, 20).WithKtVec(core.NewVec3(0.5, 0, 0)))
	b.add(geometry.NewSphere(core.NewVec3(-950, -900, -1000), 200)).
		emission(core.NewVec3(100, 50, 20)).
		material(material(0.25, 0.25, 20))
	b.add(geometry.NewTriangle(core.NewVec3(1500, -1500, -1500), core.NewVec3(-1500, 1500, -1500), core.NewVec3(670, 670, 3000))).
		emission(core.Uniform(20)).
		material(core.NewMaterial().WithKr(1))
	b.add(geometry.NewTriangle(core.NewVec3(1500, -1500, -1500), core.NewVec3(-1500, 1500, -1500), core.NewVec3(-1500, -1500, -2000))).
		emission(core.Uniform(20)).
		material(core.NewMaterial().WithKrVec(core.NewVec3(0.5, 0, 0.4)))

	b.scene.SetAmbientLight(lights.NewAmbientLight(colorWhite, 0.1))
	b.spot(core.NewVec3(1020, 400, 400), core.NewVec3(-750, -750, -150), core.NewVec3(-1, -1, -4), 0.00001, 0.000005)

	b.scene.View = frontView(10000, 2500)
	b.scene.Sampling = SamplingConfig{Width: 500, Height: 500, SamplesPerPixel: 1}

	return b.build()
}

// NewTransparentShadowScene creates two triangles under a partially transparent
// sphere, so the sphere casts a partial shadow
func NewTransparentShadowScene() (*Scene, error) {
	b := newBuilder("Transparent Shadow")

	b.add(geometry.NewTriangle(core.NewVec3(-150, -150, -115), core.NewVec3(150, -150, -135), core.NewVec3(75, 75, -150))).
		material(material(0.5, 0.5, 60))
	b.add(geometry.NewTriangle(core.NewVec3(-150, -150, -115), core.NewVec3(-70, 70, -140), core.NewVec3(75, 75, -150))).
		material(material(0.5, 0.5, 60))
	b.add(geometry.NewSphere(core.NewVec3(60, 50, -50), 30)).
		emission(colorBlue).
		material(material(0.2, 0.2, 30).WithKt(0.6))

	b.scene.SetAmbientLight(lights.NewAmbientLight(colorWhite, 0.15))
	b.spot(core.NewVec3(700, 400, 400), core.NewVec3(60, 50, 0), core.NewVec3(0, 0, -1), 4e-5, 2e-7)

	b.scene.View = frontView(1000, 200)
	b.scene.Sampling = SamplingConfig{Width: 600, Height: 600, SamplesPerPixel: 1}

	return b.build()
}

// NewGeneralScene exercises every light kind over spheres, polygons and a triangle,
// with adaptive anti-aliasing
func NewGeneralScene() (*Scene, error) {
	b := newBuilder("General")

	b.add(geometry.NewSphere(core.NewVec3(-50, 0, -100), 50)).
		emission(core.NewVec3(0, 0, 255)).
		material(material(0.4, 0.3, 100).WithKt(0.3))
	b.add(geometry.NewSphere(core.NewVec3(50, 0, -100), 30)).
		emission(core.NewVec3(0, 255, 0)).
		material(material(0.5, 0.5, 100).WithKr(0.5))
	b.add(geometry.NewPolygon(core.NewVec3(-60, -50, -150), core.NewVec3(60, -50, -150), core.NewVec3(60, -50, -50), core.NewVec3(-60, -50, -50))).
		emission(core.NewVec3(50, 100, 150)).
		material(material(0.3, 0.3, 50).WithKr(0.3))
	b.add(geometry.NewPolygon(core.NewVec3(-200, -50, -150), core.NewVec3(200, -50, -150), core.NewVec3(100, -50, 50), core.NewVec3(-100, -50, 50))).
		emission(core.NewVec3(50, 100, 150)).
		material(material(0.3, 0.3, 50).WithKr(0.3))
	b.add(geometry.NewTriangle(core.NewVec3(-20, -50, -100), core.NewVec3(20, -50, -100), core.NewVec3(0, 50, -100))).
		emission(core.NewVec3(255, 165, 0)).
		material(material(0.4, 0.4, 90))

	b.scene.SetAmbientLight(lights.NewAmbientLight(colorWhite, 0.1))
	b.directional(core.NewVec3(400, 300, 300), core.NewVec3(-1, -1, -1))
	b.point(core.NewVec3(500, 300, 0), core.NewVec3(50, 50, 50), 0.0005, 0.0005)
	b.spot(core.NewVec3(300, 300, 300), core.NewVec3(-50, 50, 25), core.NewVec3(1, -1, -2), 0.0001, 0.0001)
	b.spot(core.NewVec3(600, 400, 400), core.NewVec3(-50, -50, 25), core.NewVec3(1, 1, -2), 0.0001, 0.0001)

	b.scene.View = frontView(300, 200)
	b.scene.Sampling = SamplingConfig{Width: 500, Height: 500, SamplesPerPixel: 81, AdaptiveSampling: true}

	return b.build()
}

// NewEyeScene creates an eye: a reflective iris sphere on a white polygon sclera,
// with thin cylinders radiating through the iris
func NewEyeScene() (*Scene, error) {
	b := newBuilder("Eye")

	b.add(geometry.NewSphere(core.NewVec3(0, 12.5, -350), 65)).
		emission(colorRed).
		material(material(0.2, 0.5, 100).WithKt(0.1).WithKr(0.4))
	b.add(geometry.NewSphere(core.NewVec3(0, 12.5, -398), 70))
	b.add(geometry.NewSphere(core.NewVec3(0, 12.5, -300), 20)).
		material(core.NewMaterial().WithKr(0.7))

	b.add(geometry.NewPolygon(
		core.NewVec3(-150, 0, -399),
		core.NewVec3(-120, 30, -399),
		core.NewVec3(-90, 55, -399),
		core.NewVec3(-50, 70, -399),
		core.NewVec3(-20, 80, -399),
		core.NewVec3(20, 80, -399),
		core.NewVec3(50, 70, -399),
		core.NewVec3(90, 55, -399),
		core.NewVec3(120, 30, -399),
		core.NewVec3(150, 0, -399),
		core.NewVec3(120, -30, -399),
		core.NewVec3(50, -55, -399),
		core.NewVec3(-40, -55, -399),
		core.NewVec3(-120, -30, -399),
	)).emission(core.Uniform(245))

	const (
		lines      = 12
		irisRadius = 22.0
		lineLength = 45.0
		lineWidth  = 1.0
	)
	for i := range lines {
		angle := 2 * math.Pi * float64(i) / lines
		x, y := irisRadius*math.Cos(angle), irisRadius*math.Sin(angle)
		axis := core.NewRay(core.NewVec3(x, y+12.5, -300), core.NewVec3(-x, -y, 50))
		b.add(geometry.NewCylinder(axis, lineWidth, lineLength))
	}

	b.scene.SetAmbientLight(lights.NewAmbientLight(colorOrange, 0.2))
	b.directional(colorYellow, core.NewVec3(1, -1, 0))
	b.directional(colorYellow, core.NewVec3(1, 1, -1))
	b.point(core.NewVec3(500, 300, 0), core.NewVec3(-100, 100, -90), 0.0005, 0.0005)
	b.spot(colorYellow, core.NewVec3(-100, 100, -200), core.NewVec3(1, -1, -2), 0.0001, 0.0001)
	b.spot(core.NewVec3(600, 400, 400), core.NewVec3(-50, -50, 25), core.NewVec3(1, 1, -2), 0.0001, 0.0001)

	b.scene.View = frontView(500, 200)
	b.scene.Sampling = SamplingConfig{Width: 500, Height: 500, SamplesPerPixel: 256, AdaptiveSampling: true}

	return b.build()
}

// NewFlowerScene creates a flower: a tube stem, a golden center and pink petals
func NewFlowerScene() (*Scene, error) {
	b := newBuilder("Flower")

	b.add(geometry.NewCylinder(core.NewRay(core.NewVec3(0, -80, -50), core.AxisY), 2, 60)).
		emission(core.NewVec3(34, 139, 34)).
		material(material(0.5, 0.3, 30))
	b.add(geometry.NewSphere(core.NewVec3(0, -10, -50), 8)).
		emission(core.NewVec3(255, 215, 0)).
		material(material(0.5, 0.3, 50))
	for i := range 6 {
		angle := 2 * math.Pi * float64(i) / 6
		center := core.NewVec3(12*math.Cos(angle), -10+12*math.Sin(angle), -52)
		b.add(geometry.NewSphere(center, 7)).
			emission(colorPink).
			material(material(0.5, 0.3, 50).WithKt(0.2))
	}
	b.add(geometry.NewPlane(core.NewVec3(0, -80, 0), core.AxisY)).
		emission(core.NewVec3(60, 40, 20)).
		material(material(0.6, 0.1, 10).WithKr(0.2))

	b.scene.SetAmbientLight(lights.NewAmbientLight(colorWhite, 0.1)).
		SetBackground(core.NewVec3(135, 206, 235))
	b.directional(core.NewVec3(200, 200, 150), core.NewVec3(1, -1, -1))
	b.spot(core.NewVec3(600, 400, 400), core.NewVec3(-50, 50, 100), core.NewVec3(1, -1, -3), 0.0001, 0.0001)

	b.scene.View = frontView(300, 200)
	b.scene.Sampling = SamplingConfig{Width: 500, Height: 500, SamplesPerPixel: 16}

	return b.build()
}

// frontView looks down -Z from (0, 0, distance) with a square view plane
func frontView(distance, size float64) View {
	return View{
		Position:          core.NewVec3(0, 0, distance),
		To:                core.NewVec3(0, 0, -1),
		Up:                core.AxisY,
		ViewPlaneWidth:    size,
		ViewPlaneHeight:   size,
		ViewPlaneDistance: distance,
	}
}
