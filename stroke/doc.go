// Package stroke provides arclength-parametrized reference curves.
//
// A [Stroke] is a chain of quadratic Béziers laid out the way drawing
// applications store freehand strokes: a control polygon p0 p1 p2 p3 p4 …,
// where chunk i is the quadratic Bézier (p₂ᵢ, p₂ᵢ₊₁, p₂ᵢ₊₂). Consecutive
// chunks share their end points. The global parameter t ∈ [0, 1] is split
// evenly across the chunks.
//
// [Line], [QuadBez] and [*Stroke] all report their total length and the arc
// length from t = 0 up to any parameter t. That pair of operations is all
// that the potentials in package falloff need from a curve.
//
// # Accuracy
//
// Arc lengths of quadratic Béziers are computed with an analytical formula,
// falling back to Legendre-Gauss quadrature for nearly straight chunks where
// the formula is numerically unstable. Solving for a parameter given an arc
// length uses the [ITP method], which is as robust as bisection but usually
// converges faster.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
package stroke
