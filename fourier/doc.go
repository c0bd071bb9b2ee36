// Package fourier decomposes closed curves into Fourier series and schedules
// their incremental reveal.
//
// A curve is sampled into N complex numbers x+iy, either from a path with
// [Extract], which spaces samples evenly by arc length, or from a parametric
// function. [Analyze] transforms the samples and turns each coefficient into a
// [Term]: a circle of some radius, turning an integer number of times per
// period, starting at some phase. Chaining all circles end to end traces the
// samples exactly; the largest few usually suffice to trace a recognizable
// approximation.
//
// [Reconstruct] sums a range of terms back into a parametric function, and
// [GroupTerms] plans an animation that adds terms to the drawing in groups of
// decreasing amplitude.
package fourier
