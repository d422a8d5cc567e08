package stroke

import (
	"math"
)

// QuadBez is a quadratic Bézier, the chunk type of a [Stroke].
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

// Subsegment returns the part of q between t0 and t1, reparametrized to
// [0, 1].
func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Arclen returns the arclength of the quadratic Bézier.
//
// This computation is based on an analytical formula. Since that formula suffers
// from numerical instability when the curve is very close to a straight line, we
// detect that case and fall back to Legendre-Gauss quadrature.
//
// Overall accuracy should be better than 1e-13 over the entire range, which
// is why accuracy is accepted but not consulted.
func (q QuadBez) Arclen(accuracy float64) float64 {
	d2 := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2))
	a := d2.Hypot2()
	d1 := q.P1.Sub(q.P0)
	c := d1.Hypot2()
	if a == 0 && c == 0 {
		// All three control points coincide.
		return 0
	}
	if a < 5e-4*c {
		// Nearly straight. Legendre-Gauss quadrature, formula from Behdad in
		// https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec2(q.P0).Mul(-0.492943519233745).
			Add(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec2(q.P0).Mul(-0.0626120363218102).
			Sub(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// Sharp kink.
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
}

// Length returns the arclength of q at [DefaultAccuracy].
func (q QuadBez) Length() float64 {
	return q.Arclen(DefaultAccuracy)
}

// LengthAt returns the arclength from the start of q up to parameter t.
func (q QuadBez) LengthAt(t float64) float64 {
	checkParam(t)
	switch t {
	case 0:
		return 0
	case 1:
		return q.Length()
	}
	return q.Subsegment(0, t).Arclen(DefaultAccuracy)
}

// ParamAtLength solves for the parameter whose arclength from the start of
// q is s. The result is clamped to [0, 1].
func (q QuadBez) ParamAtLength(s float64) float64 {
	if s <= 0 {
		return 0
	}
	total := q.Length()
	if s >= total {
		return 1
	}
	f := func(t float64) float64 {
		return q.Subsegment(0, t).Arclen(DefaultAccuracy) - s
	}
	eps := max(DefaultAccuracy/total, 1e-12)
	return solveITP(f, 0, 1, eps, 1, 0.2, -s, total-s)
}
