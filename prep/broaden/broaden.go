// Package broaden turns stick spectra into continuous curves by applying a
// Lorentzian or Gaussian line shape to every peak.
//
// Computed vibrational spectra arrive as sticks, one frequency/intensity pair
// per normal mode; measured spectra are continuous. Broadening both onto one
// grid is the usual step before the overlap scores are meaningful.
//
// [Sticks] evaluates the line-shape sum directly at arbitrary grid points.
// [Convolve] is the fast path for intensities already sampled on a uniform
// grid: it convolves with a discretized kernel via FFT.
package broaden

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/crawfordgroup/spectra/spectrum"
)

var (
	// ErrInvalidWidth indicates a zero or negative half-width.
	ErrInvalidWidth = errors.New("broaden: half-width must be positive")

	// ErrInvalidSpacing indicates a zero or negative grid spacing.
	ErrInvalidSpacing = errors.New("broaden: grid spacing must be positive")
)

// Shape selects the line-shape function.
type Shape int

const (
	// Lorentzian is the natural line shape of pressure-broadened bands.
	Lorentzian Shape = iota
	// Gaussian models Doppler/inhomogeneous broadening.
	Gaussian
)

// Sticks evaluates, at every point of grid, the sum of one line shape per
// stick: peak k contributes intens[k] times a unit-area shape centered at
// freqs[k] with half-width-at-half-maximum width. The total integrated
// intensity of the curve approaches the summed stick intensities as the grid
// covers the peaks.
func Sticks(freqs, intens, grid []float64, shape Shape, width float64) ([]float64, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}

	if len(freqs) != len(intens) {
		return nil, fmt.Errorf("broaden: sticks: %w", spectrum.ErrLengthMismatch)
	}

	out := make([]float64, len(grid))
	for i, g := range grid {
		sum := 0.0
		for k, f := range freqs {
			sum += intens[k] * lineShape(g-f, shape, width)
		}

		out[i] = sum
	}

	return out, nil
}

// Convolve broadens intensities sampled on a uniform grid with the given
// spacing by FFT convolution against a discretized line-shape kernel. The
// kernel is normalized to unit discrete area, so the summed intensity of the
// input is preserved. The result has the same length as the input.
func Convolve(intens []float64, spacing float64, shape Shape, width float64) ([]float64, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}

	if spacing <= 0 {
		return nil, ErrInvalidSpacing
	}

	n := len(intens)
	if n == 0 {
		return nil, nil
	}

	kernel := makeKernel(n, spacing, shape, width)

	// Linear convolution length, rounded up to a power of two for the FFT.
	convLen := n + len(kernel) - 1
	fftSize := nextPowerOf2(convLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("broaden: failed to create FFT plan: %w", err)
	}

	signalFreq := make([]complex128, fftSize)
	if err := forwardPadded(plan, signalFreq, intens, fftSize); err != nil {
		return nil, err
	}

	kernelFreq := make([]complex128, fftSize)
	if err := forwardPadded(plan, kernelFreq, kernel, fftSize); err != nil {
		return nil, err
	}

	// Multiply in the frequency domain (convolution).
	for i := range signalFreq {
		signalFreq[i] *= kernelFreq[i]
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, signalFreq); err != nil {
		return nil, fmt.Errorf("broaden: inverse FFT failed: %w", err)
	}

	// The kernel is centered at index (len(kernel)-1)/2, so the aligned
	// output starts there.
	offset := (len(kernel) - 1) / 2

	out := make([]float64, n)
	for i := range out {
		out[i] = real(resultTime[i+offset])
	}

	return out, nil
}

// forwardPadded zero-pads values to fftSize and writes the forward transform
// into dst.
func forwardPadded(plan *algofft.Plan[complex128], dst []complex128, values []float64, fftSize int) error {
	padded := make([]complex128, fftSize)
	for i, v := range values {
		padded[i] = complex(v, 0)
	}

	if err := plan.Forward(dst, padded); err != nil {
		return fmt.Errorf("broaden: forward FFT failed: %w", err)
	}

	return nil
}

// makeKernel samples the line shape on the signal's grid, spanning the full
// signal on both sides so even the Lorentzian's slow tails are covered, and
// normalizes it to unit discrete area.
func makeKernel(n int, spacing float64, shape Shape, width float64) []float64 {
	half := n - 1
	kernel := make([]float64, 2*half+1)

	sum := 0.0
	for i := range kernel {
		x := float64(i-half) * spacing
		kernel[i] = lineShape(x, shape, width)
		sum += kernel[i]
	}

	if sum != 0 {
		vecmath.ScaleBlock(kernel, kernel, 1/sum)
	}

	return kernel
}

// lineShape evaluates a unit-area shape with half-width-at-half-maximum hwhm
// at displacement x from the peak center.
func lineShape(x float64, shape Shape, hwhm float64) float64 {
	if shape == Gaussian {
		sigma := hwhm / math.Sqrt(2*math.Ln2)
		return math.Exp(-x*x/(2*sigma*sigma)) / (sigma * math.Sqrt(2*math.Pi))
	}

	return hwhm / (math.Pi * (x*x + hwhm*hwhm))
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
