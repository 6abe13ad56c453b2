// Package trapz implements order-preserving trapezoidal quadrature over an
// explicit axis. Callers are responsible for length agreement between the
// ordinate and the axis; the overlap package validates before calling.
package trapz

import "github.com/cwbudde/algo-vecmath"

// Integrate approximates the integral of y over the axis x using the
// trapezoid rule. Samples are taken in the order given; the axis is not
// sorted. Fewer than two points integrate to zero.
func Integrate(y, x []float64) float64 {
	n := len(y)
	if n < 2 {
		return 0
	}

	sum := 0.0
	for i := 1; i < n; i++ {
		sum += (x[i] - x[i-1]) * (y[i] + y[i-1]) / 2
	}

	return sum
}

// IntegrateProduct integrates the elementwise product a*b over the axis x.
func IntegrateProduct(a, b, x []float64) float64 {
	if len(a) < 2 {
		return 0
	}

	prod := make([]float64, len(a))
	vecmath.MulBlock(prod, a, b)

	return Integrate(prod, x)
}
