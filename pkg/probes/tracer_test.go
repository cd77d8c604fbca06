package probes

import (
	"math"
	"testing"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
	"github.com/esunalp/JSGHXParser-sub003/pkg/lights"
	"github.com/esunalp/JSGHXParser-sub003/pkg/material"
	"github.com/esunalp/JSGHXParser-sub003/pkg/scene"
)

// floorScene builds a 10x10 floor quad at z=0 with a 0.5 gray albedo,
// optionally with a 4x4 blocker quad at z=2 above the origin.
func floorScene(withBlocker bool) *scene.Node {
	mat := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	root := scene.NewNode("root")

	floor := scene.NewNode("floor")
	floor.Mesh = scene.NewQuadMesh(
		core.NewVec3(-5, -5, 0),
		core.NewVec3(10, 0, 0),
		core.NewVec3(0, 10, 0),
		mat,
	)
	root.Add(floor)

	if withBlocker {
		blocker := scene.NewNode("blocker")
		blocker.Mesh = scene.NewQuadMesh(
			core.NewVec3(-2, -2, 2),
			core.NewVec3(4, 0, 0),
			core.NewVec3(0, 4, 0),
			mat,
		)
		root.Add(blocker)
	}
	return root
}

func TestTracer_AmbientFallback(t *testing.T) {
	tracer := NewTracer(scene.Capture(nil), 50)
	tracer.Ambient = lights.Ambient{
		Sky:    core.NewVec3(1, 0, 0),
		Ground: core.NewVec3(0, 1, 0),
	}

	up := tracer.Trace(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))
	if up != tracer.Ambient.Sky {
		t.Errorf("Expected sky color for an upward miss, got %v", up)
	}

	horizon := tracer.Trace(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0))
	if horizon != tracer.Ambient.Sky {
		t.Errorf("Expected sky color at the horizon (z=0 counts as sky), got %v", horizon)
	}

	down := tracer.Trace(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	if down != tracer.Ambient.Ground {
		t.Errorf("Expected ground color for a downward miss, got %v", down)
	}
}

func TestTracer_DegenerateDirection(t *testing.T) {
	tracer := NewTracer(scene.Capture(floorScene(false)), 50)
	if got := tracer.Trace(core.NewVec3(0, 0, 1), core.Vec3{}); got != (core.Vec3{}) {
		t.Errorf("Expected zero radiance for a zero direction, got %v", got)
	}
	if got := tracer.Trace(core.NewVec3(0, 0, 1), core.NewVec3(math.NaN(), 0, 0)); got != (core.Vec3{}) {
		t.Errorf("Expected zero radiance for a NaN direction, got %v", got)
	}
}

func TestTracer_DirectionalShadow_OnOff(t *testing.T) {
	sun := lights.NewDirectional(core.NewVec3(0, 0, -1), core.NewVec3(1, 1, 1), 1.0)

	origin := core.NewVec3(0, 0, 1)
	down := core.NewVec3(0, 0, -1)

	// Unblocked: direct = floor + N·L·intensity, times 0.5 albedo
	lit := NewTracer(scene.Capture(floorScene(false)), 50)
	lit.Directional = []lights.LightSource{sun}
	litRadiance := lit.Trace(origin, down)
	expectedLit := 0.5 * (defaultAmbientFloor.X + 1.0)
	if math.Abs(litRadiance.X-expectedLit) > 1e-6 {
		t.Errorf("Expected lit radiance %f, got %f", expectedLit, litRadiance.X)
	}

	// With the blocker interposed the sun contributes nothing
	blocked := NewTracer(scene.Capture(floorScene(true)), 50)
	blocked.Directional = []lights.LightSource{sun}
	blockedRadiance := blocked.Trace(origin, down)
	expectedBlocked := 0.5 * defaultAmbientFloor.X
	if math.Abs(blockedRadiance.X-expectedBlocked) > 1e-6 {
		t.Errorf("Expected shadowed radiance %f, got %f", expectedBlocked, blockedRadiance.X)
	}
}

func TestTracer_DirectionalLight_BelowHorizonSkipped(t *testing.T) {
	// Shading the underside of the floor: N·L <= 0, only the floor term
	sun := lights.NewDirectional(core.NewVec3(0, 0, -1), core.NewVec3(1, 1, 1), 1.0)
	tracer := NewTracer(scene.Capture(floorScene(false)), 50)
	tracer.Directional = []lights.LightSource{sun}

	radiance := tracer.Trace(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))
	expected := 0.5 * defaultAmbientFloor.X
	if math.Abs(radiance.X-expected) > 1e-6 {
		t.Errorf("Expected only the ambient floor term %f, got %f", expected, radiance.X)
	}
}

func TestTracer_PointLight_Attenuation(t *testing.T) {
	lamp := lights.NewPoint(core.NewVec3(0, 0, 2), core.NewVec3(1, 1, 1), 2.0, 4.0, 1.0)
	tracer := NewTracer(scene.Capture(floorScene(false)), 50)
	tracer.Point = []lights.LightSource{lamp}

	// Hit point is the floor origin, two units below the lamp:
	// attenuation (1 - 2/4)^1 = 0.5, N·L = 1
	radiance := tracer.Trace(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	expected := 0.5 * (defaultAmbientFloor.X + 2.0*0.5)
	if math.Abs(radiance.X-expected) > 1e-4 {
		t.Errorf("Expected attenuated radiance %f, got %f", expected, radiance.X)
	}
}

func TestTracer_PointLight_OutOfRange(t *testing.T) {
	lamp := lights.NewPoint(core.NewVec3(0, 0, 2), core.NewVec3(1, 1, 1), 2.0, 1.5, 1.0)
	tracer := NewTracer(scene.Capture(floorScene(false)), 50)
	tracer.Point = []lights.LightSource{lamp}

	// The lamp sits two units from the hit point but its range is 1.5
	radiance := tracer.Trace(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	expected := 0.5 * defaultAmbientFloor.X
	if math.Abs(radiance.X-expected) > 1e-6 {
		t.Errorf("Expected out-of-range lamp to contribute nothing, got %f (want %f)", radiance.X, expected)
	}
}

func TestTracer_ZeroIntensityLightsSkipped(t *testing.T) {
	tracer := NewTracer(scene.Capture(floorScene(false)), 50)
	tracer.Directional = []lights.LightSource{
		lights.NewDirectional(core.NewVec3(0, 0, -1), core.NewVec3(1, 1, 1), 0),
	}
	tracer.Point = []lights.LightSource{
		lights.NewPoint(core.NewVec3(0, 0, 2), core.NewVec3(1, 1, 1), 0, 10, 1),
	}

	radiance := tracer.Trace(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	expected := 0.5 * defaultAmbientFloor.X
	if math.Abs(radiance.X-expected) > 1e-6 {
		t.Errorf("Expected zero-intensity lights to contribute nothing, got %f", radiance.X)
	}
}
