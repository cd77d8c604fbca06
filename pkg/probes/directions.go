package probes

import (
	"math"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
)

// goldenAngle is π(3−√5), the azimuthal step of the spiral
var goldenAngle = math.Pi * (3.0 - math.Sqrt(5.0))

// SphereDirections returns n unit vectors spread near-uniformly over the
// sphere using a golden-angle spiral. The sequence is deterministic: the
// same n always yields the same directions, which keeps probe refreshes
// stable from frame to frame. n <= 0 yields an empty slice.
func SphereDirections(n int) []core.Vec3 {
	if n <= 0 {
		return nil
	}
	dirs := make([]core.Vec3, n)
	if n == 1 {
		dirs[0] = core.NewVec3(0, 0, 1)
		return dirs
	}

	for i := 0; i < n; i++ {
		z := 1.0 - 2.0*float64(i)/float64(n-1)
		r := math.Sqrt(math.Max(0, 1.0-z*z))
		phi := float64(i) * goldenAngle
		dirs[i] = core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
	}
	return dirs
}
