// Package align resamples a spectrum onto a reference frequency grid.
//
// The overlap scores pair sample and reference points by index over the
// reference frequency axis, so both curves must live on one shared grid.
// [Resample] maps a spectrum sampled on its own axis onto an arbitrary target
// grid by interpolation, either 2-point linear or 4-point cubic Hermite.
package align

import (
	"errors"
	"sort"

	"github.com/crawfordgroup/spectra/spectrum"
)

// ErrNonMonotonic indicates a source frequency axis that is not strictly
// increasing, for which segment lookup is undefined.
var ErrNonMonotonic = errors.New("align: source frequency axis must be strictly increasing")

// Mode selects the interpolation method.
type Mode int

const (
	// Linear is 2-point linear interpolation.
	Linear Mode = iota
	// Hermite is 4-point cubic Hermite interpolation.
	Hermite
)

// Resample evaluates the spectrum s at every point of grid and returns a new
// spectrum on that grid. Grid points outside the source axis clamp to the
// edge intensities. The source axis must be strictly increasing; the grid
// order is preserved as given.
func Resample(s spectrum.Spectrum, grid []float64, mode Mode) (spectrum.Spectrum, error) {
	if err := s.Validate(); err != nil {
		return spectrum.Spectrum{}, err
	}

	freqs := s.Frequencies
	for i := 1; i < len(freqs); i++ {
		if freqs[i] <= freqs[i-1] {
			return spectrum.Spectrum{}, ErrNonMonotonic
		}
	}

	out := spectrum.Spectrum{
		Frequencies: append([]float64(nil), grid...),
		Intensities: make([]float64, len(grid)),
	}

	for i, g := range grid {
		out.Intensities[i] = evaluate(s, g, mode)
	}

	return out, nil
}

// evaluate interpolates the intensity of s at frequency g.
func evaluate(s spectrum.Spectrum, g float64, mode Mode) float64 {
	freqs := s.Frequencies
	intens := s.Intensities
	n := len(freqs)

	if n == 0 {
		return 0
	}

	// First index with freqs[idx] >= g.
	idx := sort.SearchFloat64s(freqs, g)

	switch {
	case idx == 0:
		return intens[0]
	case idx == n:
		return intens[n-1]
	}

	lo := idx - 1
	frac := (g - freqs[lo]) / (freqs[idx] - freqs[lo])

	if mode == Hermite && n >= 2 {
		return hermite4(frac,
			intens[clampIndex(lo-1, n)],
			intens[lo],
			intens[idx],
			intens[clampIndex(idx+1, n)])
	}

	return intens[lo] + frac*(intens[idx]-intens[lo])
}

// hermite4 computes cubic 4-point interpolation from x0 to x1 using neighbor
// points xm1 and x2.
func hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)

	return ((c3*t+c2)*t+c1)*t + c0
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}

	if i >= n {
		return n - 1
	}

	return i
}
