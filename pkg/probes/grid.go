package probes

import (
	"math"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
)

// Probe is one lattice point of the volume: a world position plus the SH
// encoding of the light arriving there. Validity ramps from 0 to 1 as the
// updater refines the probe after a rebuild.
type Probe struct {
	IX, IY, IZ int
	Position   core.Vec3
	Coeffs     SH9
	Validity   float64
}

// ProbeGrid is a regular lattice of probes over a world-space box. Probes
// are stored row-major (x fastest); the array length always equals
// DimX·DimY·DimZ. Rebuilding replaces the whole array.
type ProbeGrid struct {
	Min, Max         core.Vec3
	DimX, DimY, DimZ int
	Steps            core.Vec3
	Probes           []Probe
}

// defaultGridBounds is the symmetric box used when the scene has no usable
// bounds.
func defaultGridBounds() core.AABB {
	return core.NewAABB(core.NewVec3(-10, -10, -10), core.NewVec3(10, 10, 10))
}

// BuildGrid lays a fresh probe lattice over bounds with the requested
// target spacing. Each axis gets max(2, ceil(size/spacing)+1) probes so the
// lattice always covers the full box with at least one cell per axis.
// Degenerate or non-finite bounds collapse to the default box.
func BuildGrid(bounds core.AABB, spacing float64) *ProbeGrid {
	if !bounds.IsValid() || !bounds.IsFinite() || bounds.Size().LengthSquared() == 0 {
		bounds = defaultGridBounds()
	}
	if spacing <= 0 || math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		spacing = 1
	}

	size := bounds.Size()
	dimX := axisProbeCount(size.X, spacing)
	dimY := axisProbeCount(size.Y, spacing)
	dimZ := axisProbeCount(size.Z, spacing)

	grid := &ProbeGrid{
		Min:  bounds.Min,
		Max:  bounds.Max,
		DimX: dimX,
		DimY: dimY,
		DimZ: dimZ,
		Steps: core.NewVec3(
			axisStep(size.X, dimX, spacing),
			axisStep(size.Y, dimY, spacing),
			axisStep(size.Z, dimZ, spacing),
		),
		Probes: make([]Probe, dimX*dimY*dimZ),
	}

	for iz := 0; iz < dimZ; iz++ {
		for iy := 0; iy < dimY; iy++ {
			for ix := 0; ix < dimX; ix++ {
				p := &grid.Probes[grid.Index(ix, iy, iz)]
				p.IX, p.IY, p.IZ = ix, iy, iz
				p.Position = core.NewVec3(
					bounds.Min.X+float64(ix)*grid.Steps.X,
					bounds.Min.Y+float64(iy)*grid.Steps.Y,
					bounds.Min.Z+float64(iz)*grid.Steps.Z,
				)
			}
		}
	}
	return grid
}

func axisProbeCount(size, spacing float64) int {
	n := int(math.Ceil(size/spacing)) + 1
	if n < 2 {
		return 2
	}
	return n
}

func axisStep(size float64, dim int, spacing float64) float64 {
	if dim <= 1 {
		return spacing
	}
	return size / float64(dim-1)
}

// Index returns the flat probe index for lattice coordinates
func (g *ProbeGrid) Index(ix, iy, iz int) int {
	return ix + iy*g.DimX + iz*g.DimX*g.DimY
}

// Count returns the number of probes in the grid
func (g *ProbeGrid) Count() int {
	return len(g.Probes)
}

// MeanValidity returns the average probe validity, 0 for an empty grid
func (g *ProbeGrid) MeanValidity() float64 {
	if len(g.Probes) == 0 {
		return 0
	}
	sum := 0.0
	for i := range g.Probes {
		sum += g.Probes[i].Validity
	}
	return sum / float64(len(g.Probes))
}
