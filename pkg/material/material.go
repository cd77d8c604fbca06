package material

import (
	"math"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
)

// Material provides the surface properties the probe tracer needs: a base
// reflectance color at a world-space point. Scattering is handled by the
// single-bounce estimator itself, so materials stay purely descriptive.
type Material interface {
	Albedo(point core.Vec3) core.Vec3
}

// ColorSource provides a color for a world-space point (solid or procedural)
type ColorSource interface {
	Evaluate(point core.Vec3) core.Vec3
}

// SolidColor is a constant color source
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the constant color
func (s *SolidColor) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerColor alternates two colors on a world-space grid
type CheckerColor struct {
	A, B core.Vec3
	Size float64 // edge length of one checker cell
}

// NewCheckerColor creates a checker color source with the given cell size
func NewCheckerColor(a, b core.Vec3, size float64) *CheckerColor {
	if size <= 0 {
		size = 1
	}
	return &CheckerColor{A: a, B: b, Size: size}
}

// Evaluate returns A or B depending on the checker parity at the point
func (c *CheckerColor) Evaluate(point core.Vec3) core.Vec3 {
	ix := int(math.Floor(point.X / c.Size))
	iy := int(math.Floor(point.Y / c.Size))
	iz := int(math.Floor(point.Z / c.Size))
	if (ix+iy+iz)%2 == 0 {
		return c.A
	}
	return c.B
}

// Diffuse is a matte surface with a base color
type Diffuse struct {
	Color ColorSource
}

// NewDiffuse creates a diffuse material with a solid color
func NewDiffuse(color core.Vec3) *Diffuse {
	return &Diffuse{Color: NewSolidColor(color)}
}

// NewTexturedDiffuse creates a diffuse material with an arbitrary color source
func NewTexturedDiffuse(color ColorSource) *Diffuse {
	return &Diffuse{Color: color}
}

// Albedo returns the base reflectance at the given world-space point
func (d *Diffuse) Albedo(point core.Vec3) core.Vec3 {
	return d.Color.Evaluate(point)
}
