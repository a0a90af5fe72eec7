package core

// Material describes how a surface responds to light under the Phong model.
// Every coefficient is per channel; values are expected in [0,1].
type Material struct {
	Kd        Vec3 // diffuse
	Ks        Vec3 // specular
	Kt        Vec3 // transmission
	Kr        Vec3 // reflection
	Shininess int
}

// NewMaterial returns a black, opaque, non-reflective material
func NewMaterial() Material {
	return Material{}
}

// WithKd returns a copy of the material with a uniform diffuse coefficient
func (m Material) WithKd(kd float64) Material {
	m.Kd = Uniform(kd)
	return m
}

// WithKs returns a copy of the material with a uniform specular coefficient
func (m Material) WithKs(ks float64) Material {
	m.Ks = Uniform(ks)
	return m
}

// WithKt returns a copy of the material with a uniform transmission coefficient
func (m Material) WithKt(kt float64) Material {
	m.Kt = Uniform(kt)
	return m
}

// WithKr returns a copy of the material with a uniform reflection coefficient
func (m Material) WithKr(kr float64) Material {
	m.Kr = Uniform(kr)
	return m
}

// WithKtVec returns a copy of the material with a per-channel transmission coefficient
func (m Material) WithKtVec(kt Vec3) Material {
	m.Kt = kt
	return m
}

// WithKrVec returns a copy of the material with a per-channel reflection coefficient
func (m Material) WithKrVec(kr Vec3) Material {
	m.Kr = kr
	return m
}

// WithShininess returns a copy of the material with the given Phong exponent
func (m Material) WithShininess(n int) Material {
	m.Shininess = n
	return m
}
