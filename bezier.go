package falloff

var _ Potential = (*BezierPotential)(nil)

// unitBlend is the blend curve without asymmetry, the shape of an
// unobstructed Bézier potential.
var unitBlend = NewBlendCurve(0)

// BezierPotential is a potential shaped by quadratic Bézier [BlendCurve]s.
//
// The zero value is an unconfigured potential.
type BezierPotential struct {
	f field
}

func (p *BezierPotential) Configure(ref ReferenceCurve, clickParam, actionLength float64) {
	p.f.configure(KindBezier, ref, clickParam, actionLength)
}

func (p *BezierPotential) Evaluate(t float64) float64 {
	return p.f.evaluate(bezierShape{}, t)
}

// Clone returns a new, unconfigured BezierPotential.
func (p *BezierPotential) Clone() Potential {
	return &BezierPotential{}
}

type bezierShape struct{}

// With a tolerance of 0 the extreme region only triggers for a click
// before the start of the curve, which Configure rules out. Clicks at the
// ends are handled by the cut-short sides instead.
func (bezierShape) tolerance() float64  { return 0 }
func (bezierShape) rangeScale() float64 { return 1 }

func (bezierShape) falloff(x float64) float64 {
	return unitBlend.Eval(x)
}

func (bezierShape) blend(x, weight float64) float64 {
	return NewBlendCurve(weight).Eval(x)
}
