// Package rotavg block-averages optical-rotation intensities over repeated
// measurement runs.
//
// Each molecule's intensity sequence is laid out as contiguous blocks of
// equal length: all channels of run 0, then all channels of run 1, and so on.
// Averaging sums corresponding channels across runs and divides by the run
// count, optionally also dividing by the molecule's molar mass.
package rotavg

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/crawfordgroup/spectra/spectrum"
)

var (
	// ErrInvalidRepeatCount indicates a zero or negative number of runs.
	ErrInvalidRepeatCount = errors.New("rotavg: repeat count must be positive")

	// ErrInvalidChannelCount indicates a negative number of channels per run.
	ErrInvalidChannelCount = errors.New("rotavg: channel count must not be negative")

	// ErrInsufficientData indicates an intensity sequence shorter than
	// Repeats*Channels, so at least one block is incomplete.
	ErrInsufficientData = errors.New("rotavg: intensity sequence shorter than repeats*channels")

	// ErrInvalidMolarMass indicates a negative molar mass. Zero is the
	// documented "skip mass normalization" sentinel, not an error.
	ErrInvalidMolarMass = errors.New("rotavg: molar mass must be zero or positive")
)

// Block describes the layout of one molecule's repeated runs: Repeats runs of
// Channels spectral channels each.
type Block struct {
	Repeats  int
	Channels int
}

// Average block-averages the intensities of each molecule listed in
// molecules, in list order, and returns the concatenation of the averaged
// per-channel values. Entries of molecules index both intensities and blocks.
//
// A molarMass of zero skips mass normalization; a positive molarMass
// additionally divides every averaged channel by it.
func Average(intensities [][]float64, blocks []Block, molecules []int, molarMass float64) ([]float64, error) {
	if molarMass < 0 {
		return nil, ErrInvalidMolarMass
	}

	result := make([]float64, 0, totalChannels(blocks, molecules))

	for _, a := range molecules {
		if a < 0 || a >= len(intensities) || a >= len(blocks) {
			return nil, fmt.Errorf("rotavg: molecule %d: %w", a, spectrum.ErrIndexOutOfRange)
		}

		averaged, err := averageOne(intensities[a], blocks[a], molarMass)
		if err != nil {
			return nil, fmt.Errorf("rotavg: molecule %d: %w", a, err)
		}

		result = append(result, averaged...)
	}

	return result, nil
}

// averageOne reduces one molecule's runs to a single averaged block.
func averageOne(intens []float64, block Block, molarMass float64) ([]float64, error) {
	if block.Repeats <= 0 {
		return nil, ErrInvalidRepeatCount
	}

	if block.Channels < 0 {
		return nil, ErrInvalidChannelCount
	}

	if len(intens) < block.Repeats*block.Channels {
		return nil, ErrInsufficientData
	}

	acc := make([]float64, block.Channels)
	for b := 0; b < block.Repeats; b++ {
		run := intens[b*block.Channels : (b+1)*block.Channels]
		vecmath.AddBlockInPlace(acc, run)
	}

	scale := 1 / float64(block.Repeats)
	if molarMass != 0 {
		scale /= molarMass
	}

	vecmath.ScaleBlock(acc, acc, scale)

	return acc, nil
}

func totalChannels(blocks []Block, molecules []int) int {
	total := 0
	for _, a := range molecules {
		if a >= 0 && a < len(blocks) && blocks[a].Channels > 0 {
			total += blocks[a].Channels
		}
	}

	return total
}
