package dof

// Hyperfocal returns the hyperfocal distance for a focal length, f-number
// and circle of confusion, all lengths in the same unit.
// Formula: H = focal² / (f × coc)
//
// fNumber and coc must be non-zero.
func Hyperfocal(focal, fNumber, coc float64) float64 {
	return focal * focal / (fNumber * coc)
}
