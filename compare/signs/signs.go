// Package signs provides per-index diagnostics for sign flips and normal-mode
// reordering between a sample spectrum and a reference spectrum.
//
// Both routines pair points positionally, not by nearest frequency: slot a of
// the output always refers to index a of the reference sequence. Signs are
// strictly +1 or -1; a ratio that is zero or undefined (zero sample
// intensity, 0/0, a repeated frequency collapsing a slope) is surfaced as
// [ErrDegenerateSign] instead of being folded into either sign. The slope
// scan's final slot carries the 0 sentinel, meaning "no successor", which is
// why 0 is never used for degenerate inputs.
package signs

import (
	"errors"
	"fmt"

	"github.com/crawfordgroup/spectra/spectrum"
)

// ErrDegenerateSign indicates a sign ratio that is zero or undefined, so
// neither +1 nor -1 describes it.
var ErrDegenerateSign = errors.New("signs: degenerate sign ratio")

// NoSuccessor is the sentinel emitted for the final slot of
// [ModeReordering], where no adjacent pair exists.
const NoSuccessor = 0

// WrongSigns compares the two spectra point by point and returns the
// frequency displacement refFreq[a]-sampleFreq[a] and the sign of the
// intensity ratio sample[a]/ref[a] for every index a. A -1 marks a point
// whose intensity flipped sign relative to the reference, which can indicate
// either a wrong computed sign or a normal-mode rearrangement.
func WrongSigns(col spectrum.Collection, sampleIdx, refIdx int) (displacements []float64, signValues []int, err error) {
	sample, ref, err := pair(col, sampleIdx, refIdx)
	if err != nil {
		return nil, nil, err
	}

	n := ref.Len()
	displacements = make([]float64, n)
	signValues = make([]int, n)

	for a := 0; a < n; a++ {
		displacements[a] = ref.Frequencies[a] - sample.Frequencies[a]

		s, ok := signOf(sample.Intensities[a] / ref.Intensities[a])
		if !ok {
			return nil, nil, fmt.Errorf("signs: intensity ratio at index %d: %w", a, ErrDegenerateSign)
		}

		signValues[a] = s
	}

	return displacements, signValues, nil
}

// ModeReordering scans adjacent index pairs (a, a+1) and compares the sign of
// the discrete intensity-over-frequency slope on the sample side against the
// reference side. A -1 in slot a flags a slope that flipped direction between
// the two spectra, the signature of reordered normal modes. The final slot
// holds [NoSuccessor].
func ModeReordering(col spectrum.Collection, sampleIdx, refIdx int) ([]int, error) {
	sample, ref, err := pair(col, sampleIdx, refIdx)
	if err != nil {
		return nil, err
	}

	n := ref.Len()
	slopeSigns := make([]int, n)

	for a := 0; a < n-1; a++ {
		refSlope := slope(ref, a)
		sampleSlope := slope(sample, a)

		s, ok := signOf(sampleSlope / refSlope)
		if !ok {
			return nil, fmt.Errorf("signs: slope ratio at index %d: %w", a, ErrDegenerateSign)
		}

		slopeSigns[a] = s
	}

	if n > 0 {
		slopeSigns[n-1] = NoSuccessor
	}

	return slopeSigns, nil
}

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

// slope returns the discrete derivative ΔI/Δf between indices a and a+1.
func slope(s spectrum.Spectrum, a int) float64 {
	df := s.Frequencies[a] - s.Frequencies[a+1]
	di := s.Intensities[a] - s.Intensities[a+1]

	return di / df
}

// signOf maps a ratio to +1/-1. Zero and NaN report !ok; NaN fails both
// comparisons, so no separate check is needed.
func signOf(ratio float64) (int, bool) {
	switch {
	case ratio > 0:
		return 1, true
	case ratio < 0:
		return -1, true
	default:
		return 0, false
	}
}
