// Package epicycle provides an immutable path model, tangent-constrained curve
// construction and arc length measurement for 2D paths. Together with the
// [honnef.co/go/epicycle/fourier] package it turns closed paths and parametric
// curves into Fourier series that can be drawn as chains of rotating circles.
//
// # Paths and commands
//
// A [Path] is an immutable sequence of [Command] values: "move to", "line to",
// "horizontal to", "vertical to", "quadratic Bézier to" and "cubic Bézier to".
// Every path starts with a move, so it always has a well-defined start point.
// Paths are assembled with a [Builder], which rejects non-finite coordinates,
// or parsed from path syntax with [ParsePath]:
//
//	M 0,0 L 10,0 H 20 V 5 Q 25,10 20,15 C 15,20 5,20 0,15
//
// Only absolute, uppercase commands are supported. [Path.String] produces the
// same syntax, so parsing and formatting round-trip.
//
// Paths can be split at their moves ([Path.SplitOnMove]) and reassembled from
// translated pieces ([Join]), translated ([Path.Translate]) and converted to
// consist only of cubic Béziers ([Path.ConvertToCubics]) without moving any end
// point.
//
// # Tangent-constrained quadratics
//
// [TryFit] and [Fit] build a quadratic Bézier between two points from the
// directions it should leave the first point and arrive at the second. Not
// every pair of directions can be satisfied by a single quadratic; Fit then
// still returns a curve, flagged with Success == false, so that callers can
// decide whether to accept it, retry with other angles, or draw something else.
//
// # Sampling and measurement
//
// [SampleParametric] and [SampleParametricSmooth] approximate a parametric
// function [Func] with a path. [Path.Length] and [Path.PointAtDistance] measure
// paths using Legendre-Gauss quadrature for arc lengths and the [ITP method]
// for inverting them. [NumericMeasurer] exposes the same through the
// string-based [Measurer] interface.
//
// # Shapes, parametric curves, and segments
//
// The drawn parts of a path are [PathSegment] values, a tagged union of [Line],
// [QuadBez] and [CubicBez]. All of them implement [ParametricCurve] and can be
// evaluated at t ∈ [0, 1].
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
package epicycle
