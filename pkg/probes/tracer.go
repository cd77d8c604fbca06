package probes

import (
	"math"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
	"github.com/esunalp/JSGHXParser-sub003/pkg/geometry"
	"github.com/esunalp/JSGHXParser-sub003/pkg/lights"
	"github.com/esunalp/JSGHXParser-sub003/pkg/scene"
)

// shadowBias keeps secondary rays off the surface they start from and pads
// every occlusion distance comparison.
const shadowBias = 1e-4

// defaultAmbientFloor keeps enclosed probes from going fully black
var defaultAmbientFloor = core.NewVec3(0.02, 0.02, 0.02)

// Tracer resolves incident radiance for one probe/direction pair: nearest
// hit against the static geometry snapshot, single-bounce direct lighting
// at the hit with shadow rays, or the ambient sky/ground fallback on a
// miss. The snapshot and light lists are read-only for the lifetime of a
// trace pass; the updater swaps them only between frames.
type Tracer struct {
	Snapshot     *scene.StaticGeometrySnapshot
	Directional  []lights.LightSource
	Point        []lights.LightSource
	Ambient      lights.Ambient
	MaxDistance  float64
	AmbientFloor core.Vec3
}

// NewTracer creates a tracer with the default ambient floor
func NewTracer(snapshot *scene.StaticGeometrySnapshot, maxDistance float64) *Tracer {
	return &Tracer{
		Snapshot:     snapshot,
		Ambient:      lights.DefaultAmbient(),
		MaxDistance:  maxDistance,
		AmbientFloor: defaultAmbientFloor,
	}
}

// Trace returns the outgoing radiance seen from origin along dir. The
// direction must be unit length; degenerate directions contribute nothing.
func (t *Tracer) Trace(origin, dir core.Vec3) core.Vec3 {
	if dir.LengthSquared() < 1e-12 || !dir.IsFinite() {
		return core.Vec3{}
	}

	var hit geometry.HitRecord
	ray := core.NewRay(origin, dir)
	if t.Snapshot == nil || !t.Snapshot.Hit(ray, shadowBias, t.MaxDistance, &hit) {
		if dir.Z >= 0 {
			return t.Ambient.Sky
		}
		return t.Ambient.Ground
	}

	// Back the shading point off the surface to avoid re-intersecting it
	shadePoint := hit.Point.Subtract(dir.Multiply(shadowBias))
	normal := hit.Normal

	albedo := core.NewVec3(0.7, 0.7, 0.7)
	if hit.Material != nil {
		albedo = hit.Material.Albedo(hit.Point)
	}

	direct := t.AmbientFloor

	for _, l := range t.Directional {
		if l.Intensity <= 0 {
			continue
		}
		toLight := l.Direction.Negate().Normalize()
		ndotl := normal.Dot(toLight)
		if ndotl <= 0 {
			continue
		}
		if t.occluded(shadePoint, toLight, t.MaxDistance, hit.Object) {
			continue
		}
		direct = direct.Add(l.Color.Multiply(l.Intensity * ndotl))
	}

	for _, l := range t.Point {
		if l.Intensity <= 0 {
			continue
		}
		delta := l.Position.Subtract(shadePoint)
		distance := delta.Length()
		if distance <= shadowBias {
			continue
		}
		lightRange := l.Range
		if lightRange <= 0 {
			lightRange = t.MaxDistance
		}
		if distance > lightRange {
			continue
		}
		toLight := delta.Multiply(1.0 / distance)
		ndotl := normal.Dot(toLight)
		if ndotl <= 0 {
			continue
		}
		decay := l.Decay
		if decay <= 0 {
			decay = 1
		}
		attenuation := math.Pow(math.Max(1.0-distance/lightRange, 0), decay)
		if attenuation <= 0 {
			continue
		}
		if t.occluded(shadePoint, toLight, distance-shadowBias, hit.Object) {
			continue
		}
		direct = direct.Add(l.Color.Multiply(l.Intensity * ndotl * attenuation))
	}

	return albedo.MultiplyVec(direct)
}

// occluded casts a shadow ray and reports whether anything blocks the light
// within limit. A first hit on the shaded object itself is discarded in
// favor of the next farther hit, so a surface never shadows its own shading
// point through numerical noise.
func (t *Tracer) occluded(from, toLight core.Vec3, limit float64, self geometry.Shape) bool {
	if limit <= shadowBias || t.Snapshot == nil {
		return false
	}

	ray := core.NewRay(from, toLight)
	var hit geometry.HitRecord
	if !t.Snapshot.Hit(ray, shadowBias, limit, &hit) {
		return false
	}

	if self != nil && hit.Object == self {
		var farther geometry.HitRecord
		if !t.Snapshot.Hit(ray, hit.T+shadowBias, limit, &farther) {
			return false
		}
		hit = farther
	}

	return hit.T < limit-shadowBias
}
