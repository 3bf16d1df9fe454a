package dof

// fStops is the full-stop aperture table, ascending.
var fStops = [...]float64{
	1.0, 1.4, 1.8, 2.0,
	2.4, 2.8, 3.5, 4.0,
	5.6, 6.3, 7.1, 8.0,
	11.0, 16.0, 22.0,
}

// FStops returns a copy of the aperture table in ascending order.
func FStops() []float64 {
	out := make([]float64, len(fStops))
	copy(out, fStops[:])
	return out
}

// UsableFStops returns the f-stops a lens with the given maximum aperture
// can be set to, in ascending order. A lens cannot open wider than its
// maximum aperture, so stops below it are skipped.
func UsableFStops(maxAperture float64) []float64 {
	var out []float64
	for _, f := range fStops {
		if f >= maxAperture {
			out = append(out, f)
		}
	}
	return out
}
