// Package dof computes thin-lens depth-of-field tables.
//
// A table is a pure function of one lens and the fixed [FStops] sequence.
// Raw measurements are first converted to meters with [Normalize]; the
// resulting [LensSpec] is then handed to a [Generator], which sweeps every
// f-stop at or above the lens's maximum aperture and a geometric series of
// subject distances between the minimum focus distance and the hyperfocal
// distance.
//
// # Usage
//
//	lens, err := dof.Normalize(dof.Input{
//	    FocalLengthMM: 105,
//	    MaxAperture:   2.0,
//	    MinFocusM:     1.0,
//	    CircleMicrons: 15.0,
//	})
//	if err != nil {
//	    return err
//	}
//	rows, err := dof.NewGenerator().Table(lens)
//
// [Generator.Rows] exposes the same rows lazily as an iter.Seq; ranging over
// it twice recomputes the table from scratch and yields identical rows.
//
// # Units
//
// Focal length is given in millimeters, circle of confusion in microns and
// minimum focus distance in meters. Every field of [LensSpec] is in meters
// except the aperture, which is an f-number.
//
// # Singularity
//
// The far limit is infinite when the subject sits at or beyond the
// hyperfocal distance. [Intervals] never yields the hyperfocal distance
// itself, so this only happens for lenses whose minimum focus distance is
// already past hyperfocal; such rows carry math.Inf(1) as their far limit.
package dof
