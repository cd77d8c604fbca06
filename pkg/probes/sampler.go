package probes

import (
	"math"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
)

// latticeClamp keeps normalized coordinates strictly inside the lattice so
// the base cell always has a neighbor at +1.
const latticeClamp = 0.9999

// Sample answers a point query by trilinear interpolation over the 8
// probes enclosing the position. Positions outside the volume clamp to the
// boundary cell. An empty grid yields the zero field.
func (g *ProbeGrid) Sample(position core.Vec3) SH9 {
	var out SH9
	if g == nil || len(g.Probes) == 0 {
		return out
	}

	fx, ix0 := g.axisCoord(position.X, g.Min.X, g.Max.X, g.DimX)
	fy, iy0 := g.axisCoord(position.Y, g.Min.Y, g.Max.Y, g.DimY)
	fz, iz0 := g.axisCoord(position.Z, g.Min.Z, g.Max.Z, g.DimZ)

	for corner := 0; corner < 8; corner++ {
		dx := corner & 1
		dy := (corner >> 1) & 1
		dz := (corner >> 2) & 1

		wx := 1 - fx
		if dx == 1 {
			wx = fx
		}
		wy := 1 - fy
		if dy == 1 {
			wy = fy
		}
		wz := 1 - fz
		if dz == 1 {
			wz = fz
		}

		weight := wx * wy * wz
		if weight == 0 {
			continue
		}

		ix := clampIndex(ix0+dx, g.DimX)
		iy := clampIndex(iy0+dy, g.DimY)
		iz := clampIndex(iz0+dz, g.DimZ)

		coeffs := &g.Probes[g.Index(ix, iy, iz)].Coeffs
		for k := 0; k < SHCoefficients; k++ {
			out[k] = out[k].Add(coeffs[k].Multiply(weight))
		}
	}
	return out
}

// axisCoord maps a world coordinate to a fractional offset within its base
// cell plus the base lattice index. Zero-size axes collapse to index 0.
func (g *ProbeGrid) axisCoord(pos, lo, hi float64, dim int) (frac float64, base int) {
	span := hi - lo
	if span <= 0 || dim < 2 {
		return 0, 0
	}
	t := (pos - lo) / span
	t = math.Max(0, math.Min(latticeClamp, t))
	scaled := t * float64(dim-1)
	base = int(math.Floor(scaled))
	return scaled - float64(base), base
}

func clampIndex(i, dim int) int {
	if i < 0 {
		return 0
	}
	if i >= dim {
		return dim - 1
	}
	return i
}
