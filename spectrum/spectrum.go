// Package spectrum defines the data contracts shared by the comparison and
// averaging packages: discretely sampled spectral curves addressed by index
// within an ordered collection.
//
// A [Spectrum] pairs a frequency axis with the intensities sampled on it; the
// two slices must be equal length. A [Collection] is the ordered set of
// spectra a caller loaded, typically one spectrum per calculation directory or
// rotational-averaging sample. All packages in this module treat spectra as
// read-only inputs.
package spectrum

import "errors"

var (
	// ErrIndexOutOfRange indicates a spectrum or molecule index outside the
	// collection it addresses.
	ErrIndexOutOfRange = errors.New("spectrum: index out of range")

	// ErrLengthMismatch indicates frequency/intensity sequences of unequal
	// length, either within one spectrum or across a compared pair.
	ErrLengthMismatch = errors.New("spectrum: frequency/intensity length mismatch")
)

// Spectrum is one sampled spectral curve. Frequencies[i] is the abscissa of
// sample i and Intensities[i] its ordinate. The axis is expected to be
// monotonic in the order given; none of the consumers sort it.
type Spectrum struct {
	Frequencies []float64
	Intensities []float64
}

// Len returns the number of sampled points.
func (s Spectrum) Len() int { return len(s.Frequencies) }

// Validate reports ErrLengthMismatch if the frequency and intensity slices
// differ in length.
func (s Spectrum) Validate() error {
	if len(s.Frequencies) != len(s.Intensities) {
		return ErrLengthMismatch
	}

	return nil
}

// Collection is an ordered sequence of spectra.
type Collection []Spectrum

// At returns the spectrum at index i after validating the index and the
// spectrum's internal length invariant.
func (c Collection) At(i int) (Spectrum, error) {
	if i < 0 || i >= len(c) {
		return Spectrum{}, ErrIndexOutOfRange
	}

	s := c[i]
	if err := s.Validate(); err != nil {
		return Spectrum{}, err
	}

	return s, nil
}

// Pair returns the sample and reference spectra for a comparison, validating
// both indices and both length invariants.
func (c Collection) Pair(sampleIdx, refIdx int) (sample, reference Spectrum, err error) {
	sample, err = c.At(sampleIdx)
	if err != nil {
		return Spectrum{}, Spectrum{}, err
	}

	reference, err = c.At(refIdx)
	if err != nil {
		return Spectrum{}, Spectrum{}, err
	}

	return sample, reference, nil
}
