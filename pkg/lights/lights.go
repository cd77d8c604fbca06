package lights

import "github.com/esunalp/JSGHXParser-sub003/pkg/core"

// Kind tags the LightSource variant
type Kind int

const (
	KindDirectional Kind = iota
	KindPoint
)

// LightSource is a tagged variant of the light types the probe tracer
// understands. Directional lights use Direction (the direction the light
// travels, from light toward the scene); point lights use Position, Range
// and Decay. Fields not belonging to the tagged kind are ignored.
type LightSource struct {
	Kind      Kind
	Direction core.Vec3 // directional: direction of travel
	Position  core.Vec3 // point: world-space position
	Color     core.Vec3
	Intensity float64
	Range     float64 // point: cutoff distance, <=0 means unlimited
	Decay     float64 // point: attenuation exponent, <=0 means 1
}

// NewDirectional creates a directional light travelling along direction
func NewDirectional(direction, color core.Vec3, intensity float64) LightSource {
	return LightSource{
		Kind:      KindDirectional,
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
	}
}

// NewPoint creates a point light at position
func NewPoint(position, color core.Vec3, intensity, lightRange, decay float64) LightSource {
	return LightSource{
		Kind:      KindPoint,
		Position:  position,
		Color:     color,
		Intensity: intensity,
		Range:     lightRange,
		Decay:     decay,
	}
}

// Hemisphere is a sky/ground fill light. It never casts shadows; the tracer
// turns it into the ambient fallback pair.
type Hemisphere struct {
	SkyColor    core.Vec3
	GroundColor core.Vec3
	Intensity   float64
}

// Ambient is the sky/ground fallback radiance pair used for rays that
// escape the scene.
type Ambient struct {
	Sky    core.Vec3
	Ground core.Vec3
}

// Ambient scales the hemisphere colors by its intensity
func (h Hemisphere) Ambient() Ambient {
	return Ambient{
		Sky:    h.SkyColor.Multiply(h.Intensity),
		Ground: h.GroundColor.Multiply(h.Intensity),
	}
}

// DefaultAmbient is the fallback pair used when no hemisphere light exists
func DefaultAmbient() Ambient {
	return Ambient{
		Sky:    core.NewVec3(0.18, 0.22, 0.30),
		Ground: core.NewVec3(0.08, 0.07, 0.06),
	}
}

// SunSkyProvider is the external sun-sky collaborator. It contributes a sun
// light and an optional hemispherical fill; both are re-read on the light
// refresh timer, never during a trace pass.
type SunSkyProvider interface {
	SunLight() (LightSource, bool)
	FillLight() (Hemisphere, bool)
}
