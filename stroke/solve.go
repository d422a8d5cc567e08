package stroke

import (
	"fmt"
	"math"
)

// DefaultAccuracy is the accuracy used for arclength computations.
const DefaultAccuracy = 1e-9

// checkParam panics unless t is a curve parameter in [0, 1].
func checkParam(t float64) {
	if !(t >= 0 && t <= 1) {
		panic(fmt.Sprintf("stroke: parameter %v outside [0, 1]", t))
	}
}

// solveITP finds a zero crossing of f in [a, b] using the ITP method.
//
// ya and yb are f(a) and f(b); ya must be negative and yb positive. The n0
// parameter trades bisection against the secant step: 0 never takes more
// iterations than bisection, 1 lets the secant method engage more on smooth
// functions. k1 is suggested to be 0.2 / (b - a). k2 is hardwired to 2.
//
// See "An Enhancement of the Bisection Method Average Performance Preserving
// Minmax Optimality", Oliveira and Takahashi.
func solveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := n0 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}
