// Package moments compares the first and second statistical moments of two
// intensity sequences: mean, population variance, and standard deviation.
package moments

import (
	"math"

	"github.com/crawfordgroup/spectra/spectrum"
)

// Diff holds the absolute moment differences between a sample and a
// reference intensity sequence.
type Diff struct {
	Mean     float64
	Variance float64
	StdDev   float64
}

// Compare computes |mean|, |variance|, and |stddev| differences between the
// intensity sequences at sampleIdx and refIdx. Variance is the population
// variance (1/N). The two sequences must be equal length; this mirrors the
// positional pairing used throughout the comparison packages.
func Compare(col spectrum.Collection, sampleIdx, refIdx int) (Diff, error) {
	sample, ref, err := col.Pair(sampleIdx, refIdx)
	if err != nil {
		return Diff{}, err
	}

	if sample.Len() != ref.Len() {
		return Diff{}, spectrum.ErrLengthMismatch
	}

	sampleMean, sampleVar := meanVariance(sample.Intensities)
	refMean, refVar := meanVariance(ref.Intensities)

	return Diff{
		Mean:     math.Abs(refMean - sampleMean),
		Variance: math.Abs(refVar - sampleVar),
		StdDev:   math.Abs(math.Sqrt(refVar) - math.Sqrt(sampleVar)),
	}, nil
}

// meanVariance reduces one sequence to its mean and population variance.
func meanVariance(values []float64) (mean, variance float64) {
	n := float64(len(values))
	if n == 0 {
		return 0, 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	mean = sum / n

	sqSum := 0.0
	for _, v := range values {
		d := v - mean
		sqSum += d * d
	}

	return mean, sqSum / n
}
