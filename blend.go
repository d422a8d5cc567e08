package falloff

import (
	"fmt"
	"math"

	"honnef.co/go/falloff/stroke"
)

// BlendCurve is a falloff shaped by a quadratic Bézier from (0, 1) to
// (1, 0), with its control point at (0.5·(1-a), 1) for asymmetry a.
type BlendCurve struct {
	q stroke.QuadBez
}

// NewBlendCurve returns the blend curve for the given asymmetry.
func NewBlendCurve(asymmetry float64) BlendCurve {
	return BlendCurve{
		q: stroke.QuadBez{
			P0: stroke.Pt(0, 1),
			P1: stroke.Pt(0.5*(1-asymmetry), 1),
			P2: stroke.Pt(1, 0),
		},
	}
}

// Eval returns the height of the curve at parameter |x|, or 0 for |x| ≥ 1.
func (b BlendCurve) Eval(x float64) float64 {
	x = math.Abs(x)
	if x >= 1 {
		return 0
	}
	return b.q.Eval(x).Y
}

// QuadraticFalloff returns 1 - x².
func QuadraticFalloff(x float64) float64 {
	return 1 - x*x
}

// GaussianFalloff returns exp(-x²).
func GaussianFalloff(x float64) float64 {
	return math.Exp(-x * x)
}

// LinearBlend interpolates from a to b. It panics unless t ∈ [0, 1].
func LinearBlend(a, b, t float64) float64 {
	checkBlend(t)
	return a*(1-t) + b*t
}

// QuadraticBezierBlend blends from a to b along a quadratic Bézier whose
// middle control value makes the blend pass through (a+b)/2 at t = 3/4.
// It panics unless t ∈ [0, 1].
func QuadraticBezierBlend(a, b, t float64) float64 {
	checkBlend(t)
	const (
		num = 3.0
		den = 4.0
	)
	middle := den * den / (2 * num) * ((a+b)*0.5 - (a+num*num*b)/(den*den))
	mt := 1 - t
	return a*mt*mt + 2*middle*t*mt + b*t*t
}

func checkBlend(t float64) {
	if !(t >= 0 && t <= 1) {
		panic(fmt.Sprintf("falloff: blend weight %v outside [0, 1]", t))
	}
}
