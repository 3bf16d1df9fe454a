package dof

import (
	"iter"
	"math"
)

// Intervals yields n subject distances spaced geometrically from minDist up
// to, but excluding, hyperfocal: minDist × r^i for i in [0, n) with
// r = (hyperfocal/minDist)^(1/n).
//
// Geometric spacing keeps samples dense near hyperfocal, where depth of field
// changes fastest. The sequence is recomputed on every range.
//
// If hyperfocal <= minDist there is no range to sample and the only value
// yielded is minDist. n <= 0 yields nothing.
func Intervals(hyperfocal, minDist float64, n int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if n <= 0 {
			return
		}
		if hyperfocal <= minDist {
			yield(minDist)
			return
		}
		r := math.Pow(hyperfocal/minDist, 1/float64(n))
		for i := range n {
			if !yield(minDist * math.Pow(r, float64(i))) {
				return
			}
		}
	}
}
