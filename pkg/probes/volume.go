package probes

import (
	"fmt"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
	"github.com/esunalp/JSGHXParser-sub003/pkg/lights"
	"github.com/esunalp/JSGHXParser-sub003/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ProbeVolume is the DDGI probe volume: a lattice of SH-encoded light
// probes refreshed incrementally against an immutable geometry snapshot.
// It is single-threaded and frame-driven — Update once per rendered frame
// on the caller's update thread, SampleSphericalHarmonics whenever a
// consumer needs the field at a point.
type ProbeVolume struct {
	opts     Options
	logger   core.Logger
	snapshot *scene.StaticGeometrySnapshot
	grid     *ProbeGrid
	tracer   *Tracer
	updater  *Updater
	provider lights.SunSkyProvider
}

// VolumeStats summarizes the volume state for logging and inspection
type VolumeStats struct {
	ProbeCount   int
	Dims         [3]int
	MeanValidity float64
	Cursor       int
	MeshCount    int
}

// NewProbeVolume creates a volume with the given settings. Out-of-range
// settings are normalized; the grid covers the default box until a scene
// root is assigned. A nil logger falls back to stdout.
func NewProbeVolume(opts Options, logger core.Logger) *ProbeVolume {
	opts.normalize()
	if logger == nil {
		logger = NewDefaultLogger()
	}

	v := &ProbeVolume{
		opts:    opts,
		logger:  logger,
		grid:    BuildGrid(core.AABB{}, opts.ProbeSpacing),
		tracer:  NewTracer(nil, opts.MaxDistance),
		updater: NewUpdater(opts.UpdateBudget, opts.SampleCount, opts.Hysteresis, opts.LightRefreshInterval),
	}
	v.updater.ResetCursor(v.grid.Count())
	return v
}

// SetSunSkyProvider attaches the external sun-sky collaborator; its lights
// are merged in on the next light refresh.
func (v *ProbeVolume) SetSunSkyProvider(p lights.SunSkyProvider) {
	v.provider = p
	v.updater.MarkLightsDirty()
}

// SetSceneRoot captures the static geometry under root, recomputes the
// padded scene bounds and rebuilds the probe grid. The old probe array is
// discarded wholesale and the cursor rewinds to 0; the next Update starts
// refining the new lattice from scratch.
func (v *ProbeVolume) SetSceneRoot(root *scene.Node) {
	v.snapshot = scene.Capture(root)
	v.tracer.Snapshot = v.snapshot

	bounds := v.snapshot.Bounds()
	if bounds.IsValid() && bounds.IsFinite() {
		bounds = bounds.Expand(v.opts.BoundsPadding)
	}
	v.grid = BuildGrid(bounds, v.opts.ProbeSpacing)
	v.updater.ResetCursor(v.grid.Count())
	v.updater.MarkLightsDirty()

	v.logger.Printf("probes: rebuilt grid %dx%dx%d (%d probes, %d meshes)\n",
		v.grid.DimX, v.grid.DimY, v.grid.DimZ, v.grid.Count(), v.snapshot.MeshCount())
}

// Update advances the budgeted refresh cycle by one frame and, when a
// query position is given, samples the committed field there. deltaTime is
// the frame duration in seconds, now the running scene time used by the
// light refresh timer.
func (v *ProbeVolume) Update(deltaTime float64, root *scene.Node, now float64, query *core.Vec3) SH9 {
	v.updater.Update(deltaTime, root, now, v.grid, v.tracer, v.provider)
	if query != nil {
		return v.grid.Sample(*query)
	}
	return SH9{}
}

// SampleSphericalHarmonics samples the committed field at a world-space
// position, independent of the update cycle.
func (v *ProbeVolume) SampleSphericalHarmonics(position core.Vec3) SH9 {
	return v.grid.Sample(position)
}

// Grid exposes the current probe grid (read-only by convention)
func (v *ProbeVolume) Grid() *ProbeGrid {
	return v.grid
}

// Options returns the normalized settings the volume runs with
func (v *ProbeVolume) Options() Options {
	return v.opts
}

// Stats returns a snapshot of the volume state
func (v *ProbeVolume) Stats() VolumeStats {
	meshes := 0
	if v.snapshot != nil {
		meshes = v.snapshot.MeshCount()
	}
	return VolumeStats{
		ProbeCount:   v.grid.Count(),
		Dims:         [3]int{v.grid.DimX, v.grid.DimY, v.grid.DimZ},
		MeanValidity: v.grid.MeanValidity(),
		Cursor:       v.updater.Cursor(),
		MeshCount:    meshes,
	}
}
