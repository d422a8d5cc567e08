package stroke

// Line is a straight segment from P0 to P1, parametrized linearly.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// LengthAt returns the distance travelled from P0 to the point at t.
func (l Line) LengthAt(t float64) float64 {
	checkParam(t)
	return t * l.Length()
}

// ParamAtLength returns the parameter whose distance from P0 is s. The
// result is clamped to [0, 1]; a zero-length line always returns 0.
func (l Line) ParamAtLength(s float64) float64 {
	n := l.Length()
	if n == 0 || s <= 0 {
		return 0
	}
	return min(s/n, 1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Quad returns the quadratic Bézier that traces the line with the same
// parametrization.
func (l Line) Quad() QuadBez {
	return QuadBez{l.P0, l.P0.Midpoint(l.P1), l.P1}
}
