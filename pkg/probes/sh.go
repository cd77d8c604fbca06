package probes

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
)

// SHCoefficients is the number of real spherical-harmonics basis functions
// kept per probe (bands 0-2).
const SHCoefficients = 9

// SH9 holds one RGB triplet per SH coefficient. The zero value is a valid
// "no light" field.
type SH9 [SHCoefficients]core.Vec3

// Real SH basis constants for bands 0-2
const (
	shBand0  = 0.282095 // Y00
	shBand1  = 0.488603 // Y1-1, Y10, Y11
	shBand2a = 1.092548 // Y2-2, Y2-1, Y21
	shBand2b = 0.315392 // Y20
	shBand2c = 0.546274 // Y22
)

// EvalBasis evaluates the 9 basis functions at a unit direction
func EvalBasis(dir core.Vec3) [SHCoefficients]float64 {
	x, y, z := dir.X, dir.Y, dir.Z
	return [SHCoefficients]float64{
		shBand0,
		shBand1 * y,
		shBand1 * z,
		shBand1 * x,
		shBand2a * x * y,
		shBand2a * y * z,
		shBand2b * (3*z*z - 1),
		shBand2a * x * z,
		shBand2c * (x*x - y*y),
	}
}

// Eval reconstructs the encoded field in the given direction
func (s SH9) Eval(dir core.Vec3) core.Vec3 {
	basis := EvalBasis(dir)
	var out core.Vec3
	for k := 0; k < SHCoefficients; k++ {
		out = out.Add(s[k].Multiply(basis[k]))
	}
	return out
}

// Lerp blends toward other at parameter t per coefficient and channel
func (s SH9) Lerp(other SH9, t float64) SH9 {
	var out SH9
	for k := 0; k < SHCoefficients; k++ {
		out[k] = s[k].Lerp(other[k], t)
	}
	return out
}

// Projector accumulates sampled radiance into SH coefficients. Channels are
// kept as flat basis-indexed slices so the accumulate/scale steps are plain
// vector arithmetic.
type Projector struct {
	r, g, b [SHCoefficients]float64
	samples int
}

// NewProjector creates an empty projector
func NewProjector() *Projector {
	return &Projector{}
}

// Reset clears the accumulated coefficients
func (p *Projector) Reset() {
	for k := 0; k < SHCoefficients; k++ {
		p.r[k], p.g[k], p.b[k] = 0, 0, 0
	}
	p.samples = 0
}

// Add accumulates one radiance sample for a unit direction
func (p *Projector) Add(dir core.Vec3, radiance core.Vec3) {
	basis := EvalBasis(dir)
	floats.AddScaled(p.r[:], radiance.X, basis[:])
	floats.AddScaled(p.g[:], radiance.Y, basis[:])
	floats.AddScaled(p.b[:], radiance.Z, basis[:])
	p.samples++
}

// Estimate returns the Monte-Carlo estimate of the projected field: the
// accumulated sums scaled by 4π/N, the quadrature weight of uniform sphere
// sampling. With no samples it returns the zero field.
func (p *Projector) Estimate() SH9 {
	var out SH9
	if p.samples == 0 {
		return out
	}
	scale := 4.0 * math.Pi / float64(p.samples)

	var r, g, b [SHCoefficients]float64
	copy(r[:], p.r[:])
	copy(g[:], p.g[:])
	copy(b[:], p.b[:])
	floats.Scale(scale, r[:])
	floats.Scale(scale, g[:])
	floats.Scale(scale, b[:])

	for k := 0; k < SHCoefficients; k++ {
		out[k] = core.NewVec3(r[k], g[k], b[k])
	}
	return out
}

// Samples returns the number of accumulated samples
func (p *Projector) Samples() int {
	return p.samples
}
