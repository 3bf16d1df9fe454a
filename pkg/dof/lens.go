package dof

import "math"

// Input holds lens measurements as the user supplies them.
type Input struct {
	// FocalLengthMM is the focal length in millimeters.
	FocalLengthMM int

	// MaxAperture is the f-number with the lens wide open.
	MaxAperture float64

	// MinFocusM is the closest focus distance in meters.
	MinFocusM float64

	// CircleMicrons is the circle of confusion in microns.
	CircleMicrons float64
}

// LensSpec describes a lens in meters. Build it with Normalize so that
// MinFocusDistance >= 2*FocalLength holds.
type LensSpec struct {
	FocalLength       float64
	MaxAperture       float64
	MinFocusDistance  float64
	CircleOfConfusion float64
}

// Normalize converts raw measurements to a LensSpec in meters.
//
// The minimum focus distance is raised to twice the focal length when the
// user asks for less; a lens cannot focus closer than that.
func Normalize(in Input) (LensSpec, error) {
	if in.FocalLengthMM <= 0 {
		return LensSpec{}, NewError(ErrCodeInvalidLens, "focal length must be positive, got %d mm", in.FocalLengthMM)
	}
	if !positive(in.MaxAperture) {
		return LensSpec{}, NewError(ErrCodeInvalidLens, "max aperture must be positive, got %v", in.MaxAperture)
	}
	if !positive(in.CircleMicrons) {
		return LensSpec{}, NewError(ErrCodeInvalidLens, "circle of confusion must be positive, got %v microns", in.CircleMicrons)
	}
	if math.IsNaN(in.MinFocusM) || math.IsInf(in.MinFocusM, 0) || in.MinFocusM < 0 {
		return LensSpec{}, NewError(ErrCodeInvalidLens, "min focus distance must not be negative, got %v m", in.MinFocusM)
	}

	focal := float64(in.FocalLengthMM) / 1000
	return LensSpec{
		FocalLength:       focal,
		MaxAperture:       in.MaxAperture,
		MinFocusDistance:  math.Max(in.MinFocusM, 2*focal),
		CircleOfConfusion: in.CircleMicrons / 1_000_000,
	}, nil
}

// Clamped reports whether Normalize raised the minimum focus distance of in.
func (in Input) Clamped() bool {
	return in.MinFocusM < 2*float64(in.FocalLengthMM)/1000
}

// Validate checks a LensSpec built without Normalize.
func (l LensSpec) Validate() error {
	switch {
	case !positive(l.FocalLength):
		return NewError(ErrCodeInvalidLens, "focal length must be positive, got %v m", l.FocalLength)
	case !positive(l.MaxAperture):
		return NewError(ErrCodeInvalidLens, "max aperture must be positive, got %v", l.MaxAperture)
	case !positive(l.CircleOfConfusion):
		return NewError(ErrCodeInvalidLens, "circle of confusion must be positive, got %v m", l.CircleOfConfusion)
	case !positive(l.MinFocusDistance):
		return NewError(ErrCodeInvalidLens, "min focus distance must be positive, got %v m", l.MinFocusDistance)
	case l.MinFocusDistance < 2*l.FocalLength:
		return NewError(ErrCodeInvalidLens, "min focus distance %v m is closer than twice the focal length", l.MinFocusDistance)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
