// Package falloff computes non-symmetric potentials along a curve.
//
// A potential describes how strongly an interactive edit, anchored at a
// "click" parameter on a reference curve, affects every other point of that
// curve. The influence spans an action length measured in arclength and is
// split around the click point, bounded by the curve's own extent on either
// side. Evaluating a potential at a curve parameter returns a weight in
// [0, 1], peaking at the click point and decaying to 0 at the edge of the
// action window.
//
// # Variants
//
// [BezierPotential] shapes the falloff with a quadratic Bézier [BlendCurve].
// [ExpPotential] blends [QuadraticFalloff] and [GaussianFalloff], mapping the
// action window onto a Gaussian reach of ±2.8, where exp(-x²) has dropped
// below 1e-3.
//
// Both variants share the same three regions:
//
//   - When the click point sits at an end of the curve, within a
//     variant-specific tolerance, the weight is a clamped x² of the
//     normalized distance into the action window.
//   - When the action window is cut short by the end of the curve on the
//     side of the evaluated point, the falloff is compressed into the
//     remaining reach and blended towards the variant's end shape by how
//     much of the window is left.
//   - Otherwise the weight is the variant's shape function of the signed,
//     normalized distance from the click point.
//
// # Curves
//
// Potentials only need a curve's total arclength and the arclength up to a
// parameter, see [ReferenceCurve]. Package honnef.co/go/falloff/stroke
// provides lines, quadratic Béziers and strokes that satisfy it.
//
// # Contracts
//
// Invalid parameters are programmer errors and cause panics: a nil curve, a
// click parameter or evaluation parameter outside [0, 1], a negative action
// length, or evaluating a potential that was never configured. Use
// [CheckParameters] to validate untrusted input first.
//
// # Concurrency
//
// A configured potential is read-only. [Potential.Evaluate] may be called
// concurrently, see [Sample]. [Potential.Configure] must not run concurrently
// with anything else on the same potential.
package falloff
