package probes

import (
	"math"

	"github.com/esunalp/JSGHXParser-sub003/pkg/lights"
	"github.com/esunalp/JSGHXParser-sub003/pkg/scene"
)

// roundRobin produces probe indices in strictly increasing wrap-around
// order. Pulling indices through it is what makes the fairness guarantee
// structural: within any window of count pulls every probe appears exactly
// once.
type roundRobin struct {
	next  int
	count int
}

// Reset rebinds the cursor to a new probe count and rewinds it to 0
func (r *roundRobin) Reset(count int) {
	r.next = 0
	r.count = count
}

// Next returns the next probe index, wrapping modulo the probe count.
// Returns -1 when the cursor is bound to an empty grid.
func (r *roundRobin) Next() int {
	if r.count <= 0 {
		return -1
	}
	i := r.next
	r.next = (r.next + 1) % r.count
	return i
}

// Position returns the index the next pull would yield
func (r *roundRobin) Position() int {
	return r.next
}

// Updater drives the budgeted refresh cycle: each frame it refreshes the
// cached light lists when the refresh timer fires, then re-projects up to
// Budget probes pulled from the round-robin cursor, blending fresh
// estimates into stored coefficients with hysteresis.
type Updater struct {
	Budget          int
	Hysteresis      float64
	SampleCount     int
	RefreshInterval float64

	cursor      roundRobin
	projector   Projector
	lastRefresh float64
	lightsDirty bool
}

// NewUpdater creates an updater; lights are considered stale until the
// first Update.
func NewUpdater(budget, sampleCount int, hysteresis, refreshInterval float64) *Updater {
	return &Updater{
		Budget:          budget,
		Hysteresis:      hysteresis,
		SampleCount:     sampleCount,
		RefreshInterval: refreshInterval,
		lightsDirty:     true,
	}
}

// ResetCursor rebinds the cursor after a grid rebuild
func (u *Updater) ResetCursor(probeCount int) {
	u.cursor.Reset(probeCount)
}

// Cursor returns the next probe index the cycle will touch
func (u *Updater) Cursor() int {
	return u.cursor.Position()
}

// MarkLightsDirty forces a light refresh on the next Update
func (u *Updater) MarkLightsDirty() {
	u.lightsDirty = true
}

// Update advances the cycle by one frame: refresh lights if due, then
// re-project up to min(Budget, probe count) probes starting at the cursor.
// Returns the number of probes touched.
func (u *Updater) Update(deltaTime float64, root *scene.Node, now float64, grid *ProbeGrid, tracer *Tracer, provider lights.SunSkyProvider) int {
	if u.lightsDirty || now-u.lastRefresh >= u.RefreshInterval {
		u.refreshLights(root, tracer, provider)
		u.lastRefresh = now
		u.lightsDirty = false
	}

	if grid == nil || grid.Count() == 0 {
		return 0
	}

	budget := u.Budget
	if budget > grid.Count() {
		budget = grid.Count()
	}

	for i := 0; i < budget; i++ {
		idx := u.cursor.Next()
		if idx < 0 {
			break
		}
		u.refreshProbe(&grid.Probes[idx], tracer, deltaTime)
	}
	return budget
}

// refreshLights re-traverses the scene and the sun-sky collaborator,
// replacing the tracer's cached light lists wholesale.
func (u *Updater) refreshLights(root *scene.Node, tracer *Tracer, provider lights.SunSkyProvider) {
	directional, point, hemi := scene.CollectLights(root)

	if provider != nil {
		if sun, ok := provider.SunLight(); ok {
			directional = append(directional, sun)
		}
		if hemi == nil {
			if fill, ok := provider.FillLight(); ok {
				h := fill
				hemi = &h
			}
		}
	}

	tracer.Directional = directional
	tracer.Point = point
	if hemi != nil {
		tracer.Ambient = hemi.Ambient()
	} else {
		tracer.Ambient = lights.DefaultAmbient()
	}
}

// refreshProbe re-estimates one probe and blends the result in. A zero
// sample count performs no quadrature and leaves the probe untouched.
func (u *Updater) refreshProbe(probe *Probe, tracer *Tracer, deltaTime float64) {
	dirs := SphereDirections(u.SampleCount)
	if len(dirs) == 0 {
		return
	}

	u.projector.Reset()
	for _, dir := range dirs {
		u.projector.Add(dir, tracer.Trace(probe.Position, dir))
	}
	fresh := u.projector.Estimate()

	probe.Coeffs = probe.Coeffs.Lerp(fresh, 1.0-u.Hysteresis)
	probe.Validity = math.Min(probe.Validity+deltaTime*float64(u.Budget), 1.0)
}
