package probes

import (
	"math"
	"testing"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
)

func TestProjector_ConstantRadiance(t *testing.T) {
	// Projecting a constant isotropic field R: the DC coefficient
	// converges to R·4π·Y00 and every higher band cancels to ~0.
	radiance := core.NewVec3(1.0, 0.5, 0.25)
	dirs := SphereDirections(1024)

	p := NewProjector()
	for _, d := range dirs {
		p.Add(d, radiance)
	}
	sh := p.Estimate()

	expectedDC := 4.0 * math.Pi * shBand0 // ≈ 3.5449 per unit radiance
	tolerance := 0.02
	if math.Abs(sh[0].X-expectedDC*radiance.X) > tolerance ||
		math.Abs(sh[0].Y-expectedDC*radiance.Y) > tolerance ||
		math.Abs(sh[0].Z-expectedDC*radiance.Z) > tolerance {
		t.Errorf("Expected DC ≈ %f·R, got %v", expectedDC, sh[0])
	}

	for k := 1; k < SHCoefficients; k++ {
		if math.Abs(sh[k].X) > tolerance || math.Abs(sh[k].Y) > tolerance || math.Abs(sh[k].Z) > tolerance {
			t.Errorf("Expected band %d ≈ 0 for constant field, got %v", k, sh[k])
		}
	}
}

func TestProjector_ConstantRadiance_Reconstructs(t *testing.T) {
	// Evaluating the projected constant field in any direction returns R
	radiance := core.NewVec3(0.8, 0.8, 0.8)
	dirs := SphereDirections(1024)

	p := NewProjector()
	for _, d := range dirs {
		p.Add(d, radiance)
	}
	sh := p.Estimate()

	for _, dir := range []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, -1, 0).Normalize(),
		core.NewVec3(1, 1, 1).Normalize(),
	} {
		got := sh.Eval(dir)
		if math.Abs(got.X-radiance.X) > 0.05 {
			t.Errorf("Expected reconstruction ≈ %f along %v, got %f", radiance.X, dir, got.X)
		}
	}
}

func TestProjector_NoSamples(t *testing.T) {
	p := NewProjector()
	sh := p.Estimate()
	for k := 0; k < SHCoefficients; k++ {
		if sh[k] != (core.Vec3{}) {
			t.Fatalf("Expected zero field with no samples, got %v at band %d", sh[k], k)
		}
	}
}

func TestProjector_Reset(t *testing.T) {
	p := NewProjector()
	p.Add(core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1))
	if p.Samples() != 1 {
		t.Fatalf("Expected 1 sample, got %d", p.Samples())
	}
	p.Reset()
	if p.Samples() != 0 {
		t.Errorf("Expected 0 samples after reset, got %d", p.Samples())
	}
	if sh := p.Estimate(); sh[0] != (core.Vec3{}) {
		t.Errorf("Expected zero estimate after reset, got %v", sh[0])
	}
}

func TestEvalBasis_DCIsConstant(t *testing.T) {
	for _, dir := range SphereDirections(16) {
		basis := EvalBasis(dir)
		if basis[0] != shBand0 {
			t.Fatalf("Expected constant DC basis %f, got %f", shBand0, basis[0])
		}
	}
}

func TestSH9_Lerp(t *testing.T) {
	var a, b SH9
	a[0] = core.NewVec3(1, 1, 1)
	b[0] = core.NewVec3(3, 3, 3)
	b[4] = core.NewVec3(2, 0, 0)

	mid := a.Lerp(b, 0.5)
	if mid[0] != core.NewVec3(2, 2, 2) {
		t.Errorf("Expected midpoint (2,2,2), got %v", mid[0])
	}
	if mid[4] != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected midpoint (1,0,0), got %v", mid[4])
	}
}
