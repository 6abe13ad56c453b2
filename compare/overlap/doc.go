// Package overlap scores the similarity of a sample spectrum against a
// reference spectrum with normalized product integrals over the reference
// frequency axis.
//
// Three scores are provided:
//
//   - [Single]: product integral normalized by the reference self-overlap
//     only. Deliberately asymmetric — an intensity-scale mismatch between
//     sample and reference shifts the score, which the symmetric form hides.
//   - [Double]: product integral normalized by both self-overlaps
//     (Cauchy–Schwarz form). Scale-invariant, 1.0 for identical curves.
//   - [IntegratedDifference]: fractional change in total integrated squared
//     intensity; positive when the sample carries less intensity than the
//     reference.
//
// All integrals run over the reference frequency axis with the trapezoid
// rule, pairing samples by index. The sample must already be aligned on that
// axis; the prep/align package resamples a spectrum onto a given grid when it
// is not.
package overlap
