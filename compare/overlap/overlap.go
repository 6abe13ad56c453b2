package overlap

import (
	"errors"
	"math"

	"github.com/crawfordgroup/spectra/internal/trapz"
	"github.com/crawfordgroup/spectra/spectrum"
)

// ErrZeroDenominator indicates a vanishing normalization integral: the
// reference (or, for [Double], the sample) has zero self-overlap, so the
// score is undefined.
var ErrZeroDenominator = errors.New("overlap: zero self-overlap denominator")

// Single computes the product integral of the two curves normalized by the
// reference's self-overlap only:
//
//	∫ ref·sample dx / ∫ ref² dx
func Single(col spectrum.Collection, sampleIdx, refIdx int) (float64, error) {
	sample, ref, err := pair(col, sampleIdx, refIdx)
	if err != nil {
		return 0, err
	}

	numerator := trapz.IntegrateProduct(ref.Intensities, sample.Intensities, ref.Frequencies)
	denominator := trapz.IntegrateProduct(ref.Intensities, ref.Intensities, ref.Frequencies)

	return divide(numerator, denominator)
}

// Double computes the symmetrically normalized product integral:
//
//	∫ ref·sample dx / sqrt(∫ ref² dx · ∫ sample² dx)
//
// Bounded in [-1, 1] for well-behaved inputs and invariant under uniform
// positive rescaling of either curve.
func Double(col spectrum.Collection, sampleIdx, refIdx int) (float64, error) {
	sample, ref, err := pair(col, sampleIdx, refIdx)
	if err != nil {
		return 0, err
	}

	numerator := trapz.IntegrateProduct(ref.Intensities, sample.Intensities, ref.Frequencies)
	refNorm := trapz.IntegrateProduct(ref.Intensities, ref.Intensities, ref.Frequencies)
	sampleNorm := trapz.IntegrateProduct(sample.Intensities, sample.Intensities, ref.Frequencies)

	return divide(numerator, math.Sqrt(refNorm*sampleNorm))
}

// IntegratedDifference computes the fractional change in total integrated
// squared intensity:
//
//	(∫ ref² dx − ∫ sample² dx) / ∫ ref² dx
func IntegratedDifference(col spectrum.Collection, sampleIdx, refIdx int) (float64, error) {
	sample, ref, err := pair(col, sampleIdx, refIdx)
	if err != nil {
		return 0, err
	}

	refNorm := trapz.IntegrateProduct(ref.Intensities, ref.Intensities, ref.Frequencies)
	sampleNorm := trapz.IntegrateProduct(sample.Intensities, sample.Intensities, ref.Frequencies)

	return divide(refNorm-sampleNorm, refNorm)
}

// pair fetches and validates the sample/reference spectra. The sample must
// carry as many points as the reference axis, since all integrals pair
// samples by index on that axis.
func pair(col spectrum.Collection, sampleIdx, refIdx int) (sample, ref spectrum.Spectrum, err error) {
	sample, ref, err = col.Pair(sampleIdx, refIdx)
	if err != nil {
		return spectrum.Spectrum{}, spectrum.Spectrum{}, err
	}

	if sample.Len() != ref.Len() {
		return spectrum.Spectrum{}, spectrum.Spectrum{}, spectrum.ErrLengthMismatch
	}

	return sample, ref, nil
}

func divide(numerator, denominator float64) (float64, error) {
	if denominator == 0 || math.IsNaN(denominator) {
		return 0, ErrZeroDenominator
	}

	return numerator / denominator, nil
}
